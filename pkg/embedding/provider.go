package embedding

import "context"

// Dimensions used across the application. The vector(1536) column in
// candidate_embeddings must match every provider's declared dimensionality.
const Dimensions = 1536

// Provider defines the interface for turning query text into a
// fixed-dimension embedding vector.
type Provider interface {
	// Name identifies the provider ("noop", "openai").
	Name() string
	// Dimensions is the length of every vector returned by Embed.
	Dimensions() int
	// Embed converts text into a vector of exactly Dimensions() floats.
	// Deterministic providers must return identical output for identical
	// input. A failed call never substitutes a default vector.
	Embed(ctx context.Context, text string) ([]float32, error)
}
