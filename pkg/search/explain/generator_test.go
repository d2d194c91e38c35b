package explain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractQueryTerms(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty", query: "", want: []string{}},
		{name: "lowercases and splits", query: "Senior Golang Engineer", want: []string{"senior", "golang", "engineer"}},
		{name: "drops single characters", query: "a b go", want: []string{"go"}},
		{name: "deduplicates preserving order", query: "go postgres go", want: []string{"go", "postgres"}},
		{name: "collapses whitespace", query: "  kubernetes   terraform ", want: []string{"kubernetes", "terraform"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractQueryTerms(tt.query)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRecordEvidence(t *testing.T) {
	fields := map[string]interface{}{
		"title":    "Senior Golang Engineer",
		"location": "Singapore",
		"salary":   nil,
	}

	exp := Build([]string{"golang"}, fields, nil, 0.8)

	require.Len(t, exp.Evidence, 1)
	item := exp.Evidence[0]
	assert.Equal(t, "title", item.Field)
	assert.Equal(t, SourceRecord, item.Source)
	assert.Empty(t, item.SourceDocumentId)
	assert.Contains(t, strings.ToLower(item.Snippet), "golang")
}

func TestBuildOneItemPerFieldEvenWithMultipleTerms(t *testing.T) {
	fields := map[string]interface{}{
		"summary": "golang and postgres and kubernetes",
	}

	exp := Build([]string{"golang", "postgres", "kubernetes"}, fields, nil, 0.5)
	assert.Len(t, exp.Evidence, 1)
}

func TestBuildNonStringFieldsMatchViaJSON(t *testing.T) {
	fields := map[string]interface{}{
		"skills":          []interface{}{"golang", "postgres"},
		"yearsExperience": float64(9),
	}

	exp := Build([]string{"golang"}, fields, nil, 0.5)

	require.Len(t, exp.Evidence, 1)
	assert.Equal(t, "skills", exp.Evidence[0].Field)
	// Snippet is the JSON rendering of the stored value.
	assert.Contains(t, exp.Evidence[0].Snippet, `"golang"`)
}

func TestBuildDocumentEvidence(t *testing.T) {
	documents := []Document{
		{Id: "doc-1", Text: "Led a team of golang engineers building payment APIs."},
		{Id: "doc-2", Text: "Completely unrelated gardening experience."},
		{Id: "doc-3", Text: "More golang, this time on the data platform."},
	}

	exp := Build([]string{"golang"}, nil, documents, 0.6)

	require.Len(t, exp.Evidence, 2)
	for _, item := range exp.Evidence {
		assert.Equal(t, "documentText", item.Field)
		assert.Equal(t, SourceDocument, item.Source)
	}
	assert.Equal(t, "doc-1", exp.Evidence[0].SourceDocumentId)
	assert.Equal(t, "doc-3", exp.Evidence[1].SourceDocumentId)
}

func TestBuildEvidenceCap(t *testing.T) {
	fields := map[string]interface{}{}
	for _, name := range []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7"} {
		fields[name] = "all about golang"
	}
	documents := []Document{
		{Id: "d1", Text: "golang"},
		{Id: "d2", Text: "golang"},
		{Id: "d3", Text: "golang"},
	}

	exp := Build([]string{"golang"}, fields, documents, 0.9)
	assert.Len(t, exp.Evidence, MaxEvidenceItems)
}

func TestBuildNeverInventsEvidence(t *testing.T) {
	fields := map[string]interface{}{
		"title":    "Frontend Developer",
		"location": "Jakarta",
	}
	documents := []Document{{Id: "d1", Text: "React and CSS specialist."}}

	exp := Build([]string{"golang", "kubernetes"}, fields, documents, 0.3)

	assert.Empty(t, exp.Evidence)
	assert.Equal(t, "Matched with 30% relevance based on overall profile similarity.", exp.Summary)
}

func TestBuildIsDeterministic(t *testing.T) {
	fields := map[string]interface{}{
		"alpha": "golang here",
		"beta":  "golang there",
		"gamma": "golang everywhere",
	}

	first := Build([]string{"golang"}, fields, nil, 0.7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Build([]string{"golang"}, fields, nil, 0.7))
	}

	// Field evidence arrives in sorted field-name order.
	require.Len(t, first.Evidence, 3)
	assert.Equal(t, "alpha", first.Evidence[0].Field)
	assert.Equal(t, "beta", first.Evidence[1].Field)
	assert.Equal(t, "gamma", first.Evidence[2].Field)
}

func TestExtractSnippet(t *testing.T) {
	t.Run("short text returned whole", func(t *testing.T) {
		got := extractSnippet("golang expert", "golang")
		assert.Equal(t, "golang expert", got)
	})

	t.Run("long text windows around the term", func(t *testing.T) {
		text := strings.Repeat("x", 300) + " golang " + strings.Repeat("y", 300)
		got := extractSnippet(text, "golang")

		assert.True(t, strings.HasPrefix(got, "…"))
		assert.True(t, strings.HasSuffix(got, "…"))
		assert.Contains(t, got, "golang")
		// Window plus markers stays near the cap.
		assert.LessOrEqual(t, len([]rune(got)), MaxSnippetLength+2)
	})

	t.Run("match at start omits leading marker", func(t *testing.T) {
		text := "golang " + strings.Repeat("z", 300)
		got := extractSnippet(text, "golang")
		assert.True(t, strings.HasPrefix(got, "golang"))
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("term absent falls back to prefix", func(t *testing.T) {
		text := strings.Repeat("a", 250)
		got := extractSnippet(text, "zzz")
		assert.Equal(t, strings.Repeat("a", MaxSnippetLength), got)
	})
}

func TestExtractSnippetKeepsRuneBoundaries(t *testing.T) {
	t.Run("window start inside a multibyte rune", func(t *testing.T) {
		// 300 three-byte runes put the raw start offset mid-rune.
		text := strings.Repeat("日", 300) + "golang"
		got := extractSnippet(text, "golang")

		assert.True(t, utf8.ValidString(got))
		assert.True(t, strings.HasPrefix(got, "…日"))
		assert.True(t, strings.HasSuffix(got, "golang"))
	})

	t.Run("window end inside a multibyte rune", func(t *testing.T) {
		text := "golang  " + strings.Repeat("日", 300)
		got := extractSnippet(text, "golang")

		assert.True(t, utf8.ValidString(got))
		assert.True(t, strings.HasPrefix(got, "golang"))
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("fallback prefix lands on a rune boundary", func(t *testing.T) {
		text := strings.Repeat("日", 100)
		got := extractSnippet(text, "zzz")

		assert.True(t, utf8.ValidString(got))
		// 200 bytes is mid-rune; the cut backs off to the previous boundary.
		assert.Equal(t, strings.Repeat("日", 66), got)
	})
}

func TestBuildSummaryForms(t *testing.T) {
	t.Run("record fields capped at four names", func(t *testing.T) {
		fields := map[string]interface{}{
			"f1": "golang", "f2": "golang", "f3": "golang", "f4": "golang", "f5": "golang",
		}
		exp := Build([]string{"golang"}, fields, nil, 0.875)
		assert.Equal(t, "88% match: matched on f1, f2, f3, f4.", exp.Summary)
	})

	t.Run("record and document evidence", func(t *testing.T) {
		fields := map[string]interface{}{"title": "golang engineer"}
		documents := []Document{{Id: "d1", Text: "golang all day"}}
		exp := Build([]string{"golang"}, fields, documents, 0.9)
		assert.Equal(t, "90% match: matched on title; supported by document content.", exp.Summary)
	})

	t.Run("document only", func(t *testing.T) {
		documents := []Document{{Id: "d1", Text: "golang all day"}}
		exp := Build([]string{"golang"}, nil, documents, 0.42)
		assert.Equal(t, "42% match: supported by document content.", exp.Summary)
	})
}
