package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/chunkview"
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

	raw := make([]byte, 1<<20)
	for i := range raw {
		raw[i] = byte(i * 31)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		log.Fatal(err)
	}
	payload := enc.EncodeAll(raw, nil)
	dec, err := zstd.NewReader(nil)
	if err != nil {
		log.Fatal(err)
	}

	var sum uint64
	var scratch []byte
	for i := 0; i < 10000; i++ {
		scratch, err = dec.DecodeAll(payload, scratch[:0])
		if err != nil {
			log.Fatal(err)
		}
		words, rest := chunkview.WithRest[[32]byte](scratch)
		for j := range words {
			sum ^= xxhash.Sum64(words[j][:])
		}
		sum ^= uint64(len(rest))
	}
	log.Printf("checksum: %016x", sum)
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
