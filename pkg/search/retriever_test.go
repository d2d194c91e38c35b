package search

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-search-be/internal/constant"
	"talent-search-be/internal/entity"
	"talent-search-be/internal/repository/contract"
	"talent-search-be/pkg/apperror"
	"talent-search-be/pkg/embedding"
)

type fakeIndex struct {
	semantic    []contract.SemanticMatch
	lexical     []contract.LexicalMatch
	semanticErr error
	lexicalErr  error
	gotState    constant.LifecycleState
}

func (f *fakeIndex) NearestByLifecycle(ctx context.Context, queryVector []float32, state constant.LifecycleState) ([]contract.SemanticMatch, error) {
	f.gotState = state
	return f.semantic, f.semanticErr
}

func (f *fakeIndex) LexicalRank(ctx context.Context, queryText string, state constant.LifecycleState) ([]contract.LexicalMatch, error) {
	return f.lexical, f.lexicalErr
}

type fakeRecords struct {
	names map[uuid.UUID]*string
	err   error
}

func (f *fakeRecords) Create(ctx context.Context, record *entity.DataRecord) error { return nil }

func (f *fakeRecords) FieldsFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]map[string]interface{}, error) {
	return nil, nil
}

func (f *fakeRecords) DisplayNamesFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.names, nil
}

func strPtr(s string) *string { return &s }

// uuidAt builds a uuid whose first byte is b, giving tests a known byte
// ordering between ids.
func uuidAt(b byte) uuid.UUID {
	var id uuid.UUID
	id[0] = b
	return id
}

func newTestRetriever(index *fakeIndex, records *fakeRecords) *Retriever {
	return NewRetriever(embedding.NewNoopProvider(), index, records)
}

func TestRetrieveUnionAndOrdering(t *testing.T) {
	a := uuidAt(1) // semantic only
	b := uuidAt(2) // both signals
	c := uuidAt(3) // lexical only

	index := &fakeIndex{
		semantic: []contract.SemanticMatch{
			{CandidateId: a, Distance: 0.1},
			{CandidateId: b, Distance: 0.4},
		},
		lexical: []contract.LexicalMatch{
			{CandidateId: b, RawRank: 0.08},
			{CandidateId: c, RawRank: 0.02},
		},
	}
	records := &fakeRecords{names: map[uuid.UUID]*string{a: strPtr("Alice")}}

	results, err := newTestRetriever(index, records).Retrieve(context.Background(), "golang", Filters{}, 20)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// a: semantic 0.9, lexical 0      -> 0.63
	// b: semantic 0.6, lexical 1.0    -> 0.72
	// c: semantic 0,   lexical 0.25   -> 0.075
	assert.Equal(t, b, results[0].CandidateId)
	assert.Equal(t, 0.72, results[0].Score)
	assert.Equal(t, a, results[1].CandidateId)
	assert.Equal(t, 0.63, results[1].Score)
	assert.Equal(t, c, results[2].CandidateId)
	assert.Equal(t, 0.075, results[2].Score)

	// Component scores surface alongside the fused score.
	assert.Equal(t, 0.6, results[0].SemanticScore)
	assert.Equal(t, 1.0, results[0].LexicalScore)
	assert.Equal(t, 0.0, results[2].SemanticScore)

	// Names hydrate where a record exists, stay nil elsewhere.
	require.NotNil(t, results[1].CandidateName)
	assert.Equal(t, "Alice", *results[1].CandidateName)
	assert.Nil(t, results[0].CandidateName)

	// Default filter resolves to ACTIVE.
	assert.Equal(t, constant.LifecycleActive, index.gotState)
}

func TestRetrieveKeepsNearestGeneration(t *testing.T) {
	a := uuidAt(1)
	index := &fakeIndex{
		semantic: []contract.SemanticMatch{
			{CandidateId: a, Distance: 0.5},
			{CandidateId: a, Distance: 0.2},
			{CandidateId: a, Distance: 0.9},
		},
	}

	results, err := newTestRetriever(index, &fakeRecords{}).Retrieve(context.Background(), "q", Filters{}, 20)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0.8, results[0].SemanticScore)
}

func TestRetrieveSimilarityFloorsAtZero(t *testing.T) {
	a := uuidAt(1)
	index := &fakeIndex{
		semantic: []contract.SemanticMatch{{CandidateId: a, Distance: 1.6}},
	}

	results, err := newTestRetriever(index, &fakeRecords{}).Retrieve(context.Background(), "q", Filters{}, 20)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].SemanticScore)
	assert.Equal(t, 0.0, results[0].Score)
}

func TestRetrieveLimitClamping(t *testing.T) {
	index := &fakeIndex{}
	for i := byte(1); i <= 150; i++ {
		index.lexical = append(index.lexical, contract.LexicalMatch{CandidateId: uuidAt(i), RawRank: float64(i)})
	}
	r := newTestRetriever(index, &fakeRecords{})

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero clamps to one", limit: 0, want: 1},
		{name: "negative clamps to one", limit: -5, want: 1},
		{name: "above max clamps to max", limit: 999, want: MaxLimit},
		{name: "in range stays", limit: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := r.Retrieve(context.Background(), "q", Filters{}, tt.limit)
			require.NoError(t, err)
			assert.Len(t, results, tt.want)
		})
	}
}

func TestRetrieveTieBreakOnCandidateId(t *testing.T) {
	// Identical signals, distinct ids: ordering falls back to id bytes.
	low := uuidAt(1)
	high := uuidAt(9)
	index := &fakeIndex{
		semantic: []contract.SemanticMatch{
			{CandidateId: high, Distance: 0.3},
			{CandidateId: low, Distance: 0.3},
		},
	}

	results, err := newTestRetriever(index, &fakeRecords{}).Retrieve(context.Background(), "q", Filters{}, 20)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, low, results[0].CandidateId)
	assert.Equal(t, high, results[1].CandidateId)
}

func TestRetrieveIsIdempotent(t *testing.T) {
	index := &fakeIndex{
		semantic: []contract.SemanticMatch{
			{CandidateId: uuidAt(3), Distance: 0.25},
			{CandidateId: uuidAt(1), Distance: 0.25},
			{CandidateId: uuidAt(7), Distance: 0.6},
		},
		lexical: []contract.LexicalMatch{
			{CandidateId: uuidAt(7), RawRank: 0.5},
			{CandidateId: uuidAt(4), RawRank: 0.1},
		},
	}
	r := newTestRetriever(index, &fakeRecords{})

	first, err := r.Retrieve(context.Background(), "q", Filters{}, 20)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := r.Retrieve(context.Background(), "q", Filters{}, 20)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRetrieveEmptyIndexes(t *testing.T) {
	results, err := newTestRetriever(&fakeIndex{}, &fakeRecords{}).Retrieve(context.Background(), "q", Filters{}, 20)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetrieveIndexFailuresAbort(t *testing.T) {
	t.Run("semantic lookup fails", func(t *testing.T) {
		index := &fakeIndex{semanticErr: errors.New("pg down")}
		_, err := newTestRetriever(index, &fakeRecords{}).Retrieve(context.Background(), "q", Filters{}, 20)
		require.Error(t, err)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, "UPSTREAM_ERROR", appErr.Code)
	})

	t.Run("lexical lookup fails", func(t *testing.T) {
		index := &fakeIndex{lexicalErr: errors.New("pg down")}
		_, err := newTestRetriever(index, &fakeRecords{}).Retrieve(context.Background(), "q", Filters{}, 20)
		require.Error(t, err)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, "UPSTREAM_ERROR", appErr.Code)
	})

	t.Run("name hydration fails", func(t *testing.T) {
		index := &fakeIndex{
			lexical: []contract.LexicalMatch{{CandidateId: uuidAt(1), RawRank: 1}},
		}
		records := &fakeRecords{err: errors.New("pg down")}
		_, err := newTestRetriever(index, records).Retrieve(context.Background(), "q", Filters{}, 20)
		require.Error(t, err)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, "UPSTREAM_ERROR", appErr.Code)
	})
}
