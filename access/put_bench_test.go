package access

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/vmihailenco/msgpack/v5"

	goccyjson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
)

var labels = []string{
	"user", "alice",
	"role", "admin",
	"email", "alice@example.com",
	"team", "core",
	"zone", "eu-west",
}

var sinkPacked, sinkJSON []byte
var sinkStrings []string

func reportPerPack(b *testing.B, name string, elapsed time.Duration, count int, size int) {
	perPack := float64(elapsed.Nanoseconds()) / float64(b.N*count)
	opsPerSec := 1e9 / perPack
	b.Logf("%s: per-pack = %.2f ns/op, %.2f ops/sec", name, perPack, opsPerSec)
	b.Logf("%s size: %d bytes", name, size)
}

func BenchmarkPack_Encode(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			sinkPacked = Encode(labels)
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	reportPerPack(b, "Encode", elapsed, count, len(sinkPacked))
}

func BenchmarkPack_PutAccessPooled(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			put := GetPutAccess()
			put.AddStrings(labels...)
			sinkPacked = put.Pack()
			ReleasePutAccess(put)
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	reportPerPack(b, "PutAccessPooled", elapsed, count, len(sinkPacked))
}

// BenchmarkPack_StringPerAlloc is the baseline the packed layout replaces:
// one heap allocation per string.
func BenchmarkPack_StringPerAlloc(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			out := make([]string, len(labels))
			for k, s := range labels {
				out[k] = string([]byte(s))
			}
			sinkStrings = out
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	reportPerPack(b, "StringPerAlloc", elapsed, count, 0)
}

func BenchmarkPack_Json(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			sinkJSON, _ = json.Marshal(labels)
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	reportPerPack(b, "Json", elapsed, count, len(sinkJSON))
}

func BenchmarkPack_JsonIter(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			sinkJSON, _ = jsonIter.Marshal(labels)
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	reportPerPack(b, "JsonIter", elapsed, count, len(sinkJSON))
}

func BenchmarkPack_GoJson(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			sinkJSON, _ = goccyjson.Marshal(labels)
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	reportPerPack(b, "GoJson", elapsed, count, len(sinkJSON))
}

func BenchmarkPack_MsgPack(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			sinkJSON, _ = msgpack.Marshal(labels)
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	reportPerPack(b, "MsgPack", elapsed, count, len(sinkJSON))
}

func BenchmarkPack_Mus(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			size := varint.Int.Size(len(labels))
			for _, s := range labels {
				size += ord.String.Size(s)
			}
			dst := make([]byte, size)
			n := varint.Int.Marshal(len(labels), dst)
			for _, s := range labels {
				n += ord.String.Marshal(s, dst[n:])
			}
			sinkPacked = dst
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	reportPerPack(b, "Mus", elapsed, count, len(sinkPacked))
}

func BenchmarkGet_Unsafe(b *testing.B) {
	get := View(Encode(labels), len(labels))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j := 0; j < get.Count(); j++ {
			s, _ := get.GetStringUnsafe(j)
			if len(s) == 0 {
				b.Fatal("empty label")
			}
		}
	}
}
