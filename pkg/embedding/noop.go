package embedding

import "context"

// NoopProvider produces deterministic pseudo-embeddings without any network
// call. Default for CI and tests: identical text always yields the identical
// vector, so ranking runs are reproducible end to end.
type NoopProvider struct{}

func NewNoopProvider() Provider {
	return &NoopProvider{}
}

func (p *NoopProvider) Name() string {
	return "noop"
}

func (p *NoopProvider) Dimensions() int {
	return Dimensions
}

// Embed hashes the text with 32-bit FNV-1a, then expands the hash into a
// vector via xorshift. Values land in [-1, 1).
func (p *NoopProvider) Embed(_ context.Context, text string) ([]float32, error) {
	var h uint32 = 2166136261
	for i := 0; i < len(text); i++ {
		h ^= uint32(text[i])
		h *= 16777619
	}

	vec := make([]float32, Dimensions)
	x := h
	for i := 0; i < Dimensions; i++ {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		vec[i] = float32(x%2000)/1000 - 1
	}
	return vec, nil
}
