package fixstr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStringer(t *testing.T) {
	v := Lit("Hello")
	require.Equal(t, "Hello", fmt.Sprintf("%s", v))
	require.Equal(t, "Hello", v.String())
}

func TestMarshalText(t *testing.T) {
	v := FromString(32, "Hello")
	out, err := v.MarshalText()
	require.NoError(t, err)
	// only the content range is emitted, never the leftover cells
	require.Equal(t, []byte("Hello"), out)
}

func TestYAMLRoundTrip(t *testing.T) {
	type record struct {
		Name String `yaml:"name"`
	}
	data, err := yaml.Marshal(record{Name: Lit("Hello")})
	require.NoError(t, err)
	require.Equal(t, "name: Hello\n", string(data))

	var plain struct {
		Name string `yaml:"name"`
	}
	require.NoError(t, yaml.Unmarshal(data, &plain))
	require.True(t, Equal(Lit("Hello"), FromString(len(plain.Name), plain.Name)))
}

func TestIs(t *testing.T) {
	require.True(t, Is(Lit("abc")))
	require.True(t, Is(String{}))
	require.False(t, Is("abc"))
	require.False(t, Is(42))
	require.False(t, Is(nil))
}

func TestFitValue(t *testing.T) {
	v := FitValue(FromString(100, "abc"))
	require.Equal(t, 3, v.Cap())
	require.Equal(t, "abc", v.View())

	require.Panics(t, func() { FitValue("abc") })
}

func TestJoin(t *testing.T) {
	require.Equal(t, "", Join(", "))
	require.Equal(t, "a", Join(", ", Lit("a")))
	require.Equal(t, "a, b, c", Join(", ", Lit("a"), Lit("b"), Lit("c")))
	require.Equal(t, "ab", Join("", Lit("a"), Lit("b")))
}
