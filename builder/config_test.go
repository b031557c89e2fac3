// Package builder contains unit tests for builderConfig and BuilderOption
// resolution.
package builder

import (
	"math/rand"
	"testing"
)

// TestSourceOptions verifies defaulting and last-wins semantics.
func TestSourceOptions(t *testing.T) {
	t.Parallel()

	// 1. Default config owns a private, non-nil source.
	if cfg := newBuilderConfig(); cfg.src == nil {
		t.Fatal("default config: src is nil")
	}

	// 2. Equal seeds replay equal streams.
	a := newBuilderConfig(WithSeed(5))
	b := newBuilderConfig(WithSeed(5))
	for i := 0; i < 10; i++ {
		if x, y := a.src.Float64(), b.src.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}

	// 3. Later options override earlier ones.
	r := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithSeed(5), WithRand(r))
	if cfg.src != Source(r) {
		t.Errorf("WithRand after WithSeed: expected injected rng")
	}
}
