package explain

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// MaxEvidenceItems caps the evidence list per candidate.
	MaxEvidenceItems = 8

	// MaxSnippetLength caps snippet size in characters.
	MaxSnippetLength = 200

	// MinTermLength drops query terms too short to match meaningfully.
	MinTermLength = 2
)

// Evidence sources. Record evidence points at a field of the candidate's
// data record; document evidence points at one of its documents.
const (
	SourceRecord   = "record"
	SourceDocument = "document"
)

type EvidenceItem struct {
	Field            string `json:"field"`
	Snippet          string `json:"snippet"`
	Source           string `json:"source"`
	SourceDocumentId string `json:"source_document_id,omitempty"`
}

type Explanation struct {
	Summary  string         `json:"summary"`
	Evidence []EvidenceItem `json:"evidence"`
}

// Document is a candidate document with its extracted text.
type Document struct {
	Id   string
	Text string
}

// ExtractQueryTerms derives matchable terms from the effective query:
// lowercased, whitespace-split, deduplicated, minimum length applied.
func ExtractQueryTerms(query string) []string {
	words := strings.Fields(strings.ToLower(query))

	seen := make(map[string]bool, len(words))
	terms := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < MinTermLength || seen[w] {
			continue
		}
		seen[w] = true
		terms = append(terms, w)
	}
	return terms
}

// Build generates a grounded explanation for a single ranked candidate.
//
// Deterministic keyword matching, no LLM: every evidence item references an
// actual field value or document text, so grounding can be verified by
// comparing the output against the inputs. Field names are visited in
// sorted order so repeated runs produce identical evidence (Go map
// iteration order is randomized).
//
// Pure function of its four inputs; it never fails. A candidate without a
// record or documents gets empty evidence and the fallback summary.
func Build(queryTerms []string, fields map[string]interface{}, documents []Document, score float64) Explanation {
	evidence := []EvidenceItem{}

	fieldNames := make([]string, 0, len(fields))
	for name := range fields {
		fieldNames = append(fieldNames, name)
	}
	sort.Strings(fieldNames)

	for _, fieldName := range fieldNames {
		value := fields[fieldName]
		if value == nil {
			continue
		}
		valueStr := stringifyFieldValue(value)
		valueLower := strings.ToLower(valueStr)

		for _, term := range queryTerms {
			if strings.Contains(valueLower, term) {
				evidence = append(evidence, EvidenceItem{
					Field:   fieldName,
					Snippet: extractSnippet(valueStr, term),
					Source:  SourceRecord,
				})
				break // one evidence item per field
			}
		}
	}

	for _, doc := range documents {
		if doc.Text == "" {
			continue
		}
		textLower := strings.ToLower(doc.Text)
		for _, term := range queryTerms {
			if strings.Contains(textLower, term) {
				evidence = append(evidence, EvidenceItem{
					Field:            "documentText",
					Snippet:          extractSnippet(doc.Text, term),
					Source:           SourceDocument,
					SourceDocumentId: doc.Id,
				})
				break // one evidence item per document
			}
		}
	}

	if len(evidence) > MaxEvidenceItems {
		evidence = evidence[:MaxEvidenceItems]
	}

	return Explanation{
		Summary:  buildSummary(evidence, score),
		Evidence: evidence,
	}
}

// stringifyFieldValue renders non-string jsonb values (numbers, booleans,
// arrays, objects) in their canonical JSON form for matching.
func stringifyFieldValue(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}

// extractSnippet returns a window of text around the first occurrence of
// term, with ellipsis markers wherever the window is cut short. Falls back
// to the leading MaxSnippetLength characters when the term is absent.
func extractSnippet(text, term string) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(term))
	if idx == -1 {
		if len(text) > MaxSnippetLength {
			return text[:alignRuneStart(text, MaxSnippetLength)]
		}
		return text
	}

	contextPad := (MaxSnippetLength - len(term)) / 2
	start := idx - contextPad
	if start < 0 {
		start = 0
	}
	end := idx + len(term) + contextPad
	if end > len(text) {
		end = len(text)
	}

	// Window offsets are byte positions; pull them back onto rune
	// boundaries so a cut never emits a partial UTF-8 sequence.
	start = alignRuneStart(text, start)
	end = alignRuneStart(text, end)

	snippet := strings.TrimSpace(text[start:end])
	if start > 0 {
		snippet = "…" + snippet
	}
	if end < len(text) {
		snippet = snippet + "…"
	}
	return snippet
}

// alignRuneStart moves a byte offset backwards until it lands on the start
// of a UTF-8 rune. Offsets at the ends of text are returned unchanged.
func alignRuneStart(text string, offset int) int {
	for offset > 0 && offset < len(text) && !utf8.RuneStart(text[offset]) {
		offset--
	}
	return offset
}

func buildSummary(evidence []EvidenceItem, score float64) string {
	pct := int(math.Round(score * 100))

	if len(evidence) == 0 {
		return fmt.Sprintf("Matched with %d%% relevance based on overall profile similarity.", pct)
	}

	var recordFields []string
	hasDocument := false
	for _, e := range evidence {
		switch e.Source {
		case SourceRecord:
			recordFields = append(recordFields, e.Field)
		case SourceDocument:
			hasDocument = true
		}
	}

	var parts []string
	if len(recordFields) > 0 {
		if len(recordFields) > 4 {
			recordFields = recordFields[:4]
		}
		parts = append(parts, "matched on "+strings.Join(recordFields, ", "))
	}
	if hasDocument {
		parts = append(parts, "supported by document content")
	}

	return fmt.Sprintf("%d%% match: %s.", pct, strings.Join(parts, "; "))
}
