package search

import "math"

// Fixed fusion weights. Semantic similarity dominates, but a lexical exact
// match still meaningfully shifts rank. Must always sum to 1.
const (
	SemanticWeight = 0.7
	LexicalWeight  = 0.3
)

// Clamp01 bounds a signal to [0, 1]. Upstream cosine arithmetic can drift
// slightly outside the range.
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Round4 rounds to 4 decimal places for stable, comparable scores.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// Fuse combines the semantic and lexical signals into the single relevance
// score used for ranking. This is the only comparator retrieval applies.
func Fuse(semantic, lexical float64) float64 {
	s := Clamp01(semantic)
	l := Clamp01(lexical)
	return Round4(SemanticWeight*s + LexicalWeight*l)
}
