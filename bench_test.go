package queuelog

import (
	"io"
	"path/filepath"
	"strconv"
	"testing"
)

// newBenchService starts a Service whose console output is discarded.
// An empty path skips the file sink so only queueing overhead is measured.
func newBenchService(b *testing.B, path string, debug bool) *Service {
	b.Helper()
	s := &Service{Console: io.Discard}
	if err := s.Setup(path, false, debug); err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = s.Stop() })
	return s
}

func BenchmarkEmit_Info(b *testing.B) {
	s := newBenchService(b, "", false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Info("hello")
	}
}

func BenchmarkEmit_DebugFiltered(b *testing.B) {
	s := newBenchService(b, "", false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Debug("never queued")
	}
}

func BenchmarkEmit_Parallel(b *testing.B) {
	s := newBenchService(b, "", true)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s.Warn("parallel " + strconv.Itoa(i))
			i++
		}
	})
}

func BenchmarkEmit_WithFile(b *testing.B) {
	s := newBenchService(b, filepath.Join(b.TempDir(), "bench.log"), false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Err("to file")
	}
}

func BenchmarkEntryLine(b *testing.B) {
	s := &Service{}
	e := newEntry(s.now(), InfoLevel, "rendered", true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Line(RenderColored)
	}
}
