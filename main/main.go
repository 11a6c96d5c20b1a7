package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/fixstr"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	base := fixstr.Lit("record=")
	fields := []string{"azerty", "hello", "world", "random"}
	for i := 0; i < 10000; i++ {
		v := base
		for _, field := range fields {
			v = v.AppendString(field, len(field))
			v = v.PushBack(';')
		}
		v = v.Fit()
		_ = v.View()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
