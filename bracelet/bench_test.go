package bracelet_test

import (
	"testing"

	"github.com/stacklab/bracelet/bracelet"
	"github.com/stacklab/bracelet/classifier"
	"github.com/stacklab/bracelet/stacks"
)

// BenchmarkVerify measures one classifier scan over a 52-card stack.
func BenchmarkVerify(b *testing.B) {
	red, err := classifier.Lookup("RED")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bracelet.Verify(stacks.Sample, red)
	}
}

// BenchmarkVerifyDeck measures the full deck-test sweep plus the suit
// test.
func BenchmarkVerifyDeck(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bracelet.VerifyDeck(stacks.Sample)
	}
}

// BenchmarkVerifySuits measures the quaternary scan alone.
func BenchmarkVerifySuits(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bracelet.VerifySuits(stacks.Sample)
	}
}
