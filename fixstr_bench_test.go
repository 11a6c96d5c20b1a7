package fixstr

import "testing"

func BenchmarkConcat(b *testing.B) {
	parts := []String{Lit("Hello"), Lit(", "), Lit("World"), Lit("!")}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Concat(parts...)
	}
}

func BenchmarkAppendChain(b *testing.B) {
	base := Lit("record=")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := base.AppendString("field", 8)
		v = v.PushBack(';')
		_ = v.Fit()
	}
}

func BenchmarkView(b *testing.B) {
	v := Lit("Hello, World!")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.View()
	}
}

func BenchmarkStringCopy(b *testing.B) {
	v := Lit("Hello, World!")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkJoin(b *testing.B) {
	parts := []String{Lit("alpha"), Lit("beta"), Lit("gamma")}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Join(", ", parts...)
	}
}
