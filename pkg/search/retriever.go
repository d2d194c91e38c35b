package search

import (
	"bytes"
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"talent-search-be/internal/repository/contract"
	"talent-search-be/pkg/apperror"
	"talent-search-be/pkg/embedding"
)

// minRankFloor guards the lexical normalization divisor when the filtered
// set is empty or every raw rank is zero.
const minRankFloor = 0.0001

// Retriever runs hybrid retrieval: embed the query, collect the semantic
// and lexical signals from the two index lookups, fuse, rank, truncate.
type Retriever struct {
	provider embedding.Provider
	index    contract.CandidateIndexRepository
	records  contract.DataRecordRepository
}

func NewRetriever(
	provider embedding.Provider,
	index contract.CandidateIndexRepository,
	records contract.DataRecordRepository,
) *Retriever {
	return &Retriever{
		provider: provider,
		index:    index,
		records:  records,
	}
}

// Retrieve ranks every candidate matching the filter against the query.
//
// An entity present in only one signal set still ranks; the missing signal
// defaults to 0. Any collaborator failure aborts the whole call; partial
// results are never returned as if complete. For a fixed index snapshot and
// a deterministic provider the output is exactly reproducible.
func (r *Retriever) Retrieve(ctx context.Context, query string, filters Filters, limit int) ([]Result, error) {
	limit = clampLimit(limit)
	state := filters.Resolve()

	queryVector, err := r.provider.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	semanticRows, err := r.index.NearestByLifecycle(ctx, queryVector, state)
	if err != nil {
		return nil, apperror.Upstream("Vector index lookup failed.").WithCause(err)
	}

	lexicalRows, err := r.index.LexicalRank(ctx, query, state)
	if err != nil {
		return nil, apperror.Upstream("Text index lookup failed.").WithCause(err)
	}

	// Nearest embedding row per candidate wins; similarity floors at 0.
	semantic := make(map[uuid.UUID]float64, len(semanticRows))
	for _, row := range semanticRows {
		similarity := math.Max(1-row.Distance, 0)
		if existing, ok := semantic[row.CandidateId]; !ok || similarity > existing {
			semantic[row.CandidateId] = similarity
		}
	}

	// Normalize raw lexical ranks against the batch maximum.
	maxRank := 0.0
	for _, row := range lexicalRows {
		if row.RawRank > maxRank {
			maxRank = row.RawRank
		}
	}
	divisor := math.Max(maxRank, minRankFloor)

	lexical := make(map[uuid.UUID]float64, len(lexicalRows))
	for _, row := range lexicalRows {
		lexical[row.CandidateId] = row.RawRank / divisor
	}

	// Union of both signal sets; a missing signal contributes 0.
	union := make(map[uuid.UUID]struct{}, len(semantic)+len(lexical))
	for id := range semantic {
		union[id] = struct{}{}
	}
	for id := range lexical {
		union[id] = struct{}{}
	}

	results := make([]Result, 0, len(union))
	for id := range union {
		sem := Round4(Clamp01(semantic[id]))
		lex := Round4(Clamp01(lexical[id]))
		results = append(results, Result{
			CandidateId:   id,
			Score:         Fuse(semantic[id], lexical[id]),
			SemanticScore: sem,
			LexicalScore:  lex,
		})
	}

	// Fused score descending; candidate id ascending breaks exact ties so
	// repeated runs against the same snapshot order identically.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return bytes.Compare(results[i].CandidateId[:], results[j].CandidateId[:]) < 0
	})

	if len(results) > limit {
		results = results[:limit]
	}

	if err := r.hydrateNames(ctx, results); err != nil {
		return nil, apperror.Upstream("Data record lookup failed.").WithCause(err)
	}

	return results, nil
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func (r *Retriever) hydrateNames(ctx context.Context, results []Result) error {
	if len(results) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(results))
	for i, res := range results {
		ids[i] = res.CandidateId
	}

	names, err := r.records.DisplayNamesFor(ctx, ids)
	if err != nil {
		return err
	}

	for i := range results {
		results[i].CandidateName = names[results[i].CandidateId]
	}
	return nil
}
