package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopProviderDimensions(t *testing.T) {
	p := NewNoopProvider()
	assert.Equal(t, Dimensions, p.Dimensions())

	vec, err := p.Embed(context.Background(), "golang engineer")
	require.NoError(t, err)
	assert.Len(t, vec, Dimensions)
}

func TestNoopProviderDeterministic(t *testing.T) {
	p := NewNoopProvider()

	first, err := p.Embed(context.Background(), "satellite telemetry")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := p.Embed(context.Background(), "satellite telemetry")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNoopProviderDistinguishesInputs(t *testing.T) {
	p := NewNoopProvider()

	a, err := p.Embed(context.Background(), "golang backend")
	require.NoError(t, err)
	b, err := p.Embed(context.Background(), "watercolor painting")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNoopProviderValueRange(t *testing.T) {
	p := NewNoopProvider()

	for _, text := range []string{"", "x", "a much longer query with many words"} {
		vec, err := p.Embed(context.Background(), text)
		require.NoError(t, err)
		for i, v := range vec {
			if v < -1 || v >= 1 {
				t.Fatalf("Embed(%q)[%d] = %v, outside [-1, 1)", text, i, v)
			}
		}
	}
}
