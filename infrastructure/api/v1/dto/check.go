// Package dto contains request and response types for the v1 API.
package dto

import (
	"time"

	"github.com/veritext/veritext/application/service"
	"github.com/veritext/veritext/domain/match"
)

// CheckRequest asks for a plain-text check.
type CheckRequest struct {
	Text       string `json:"text"`
	LineOffset int    `json:"line_offset,omitempty"`
}

// BitextCheckRequest asks for a single aligned pair check.
type BitextCheckRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// CorrectRequest asks for automatic correction of a text.
type CorrectRequest struct {
	Text string `json:"text"`
}

// Match is the wire form of a rule match.
type Match struct {
	RuleID      string   `json:"rule_id"`
	FromPos     int      `json:"from_pos"`
	ToPos       int      `json:"to_pos"`
	Line        int      `json:"line"`
	EndLine     int      `json:"end_line"`
	Column      int      `json:"column"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// CheckResponse carries the matches found in a check run.
type CheckResponse struct {
	Matches       []Match `json:"matches"`
	SentenceCount int     `json:"sentence_count"`
	ElapsedMillis int64   `json:"elapsed_ms"`
}

// CorrectResponse carries a corrected text.
type CorrectResponse struct {
	Corrected  string `json:"corrected"`
	MatchCount int    `json:"match_count"`
}

// Rule is the wire form of a registered rule.
type Rule struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	DefaultOff  bool   `json:"default_off"`
	Active      bool   `json:"active"`
}

// RulesResponse lists the registered rules.
type RulesResponse struct {
	Rules []Rule `json:"rules"`
}

// CheckRecord is the wire form of a persisted check-run summary.
type CheckRecord struct {
	ID            int64     `json:"id"`
	Kind          string    `json:"kind"`
	MatchCount    int       `json:"match_count"`
	SentenceCount int       `json:"sentence_count"`
	ElapsedMillis int64     `json:"elapsed_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

// HistoryResponse lists recent check-run summaries.
type HistoryResponse struct {
	Checks []CheckRecord `json:"checks"`
}

// MatchFromDomain converts a domain match to its wire form.
func MatchFromDomain(m match.RuleMatch) Match {
	return Match{
		RuleID:      m.RuleID(),
		FromPos:     m.FromPos(),
		ToPos:       m.ToPos(),
		Line:        m.Line(),
		EndLine:     m.EndLine(),
		Column:      m.Column(),
		Message:     m.Message(),
		Suggestions: m.Suggestions(),
		URL:         m.URL(),
	}
}

// MatchesFromDomain converts a slice of domain matches.
func MatchesFromDomain(ms []match.RuleMatch) []Match {
	out := make([]Match, len(ms))
	for i, m := range ms {
		out[i] = MatchFromDomain(m)
	}
	return out
}

// CheckResponseFromResult converts a service result to its wire form.
func CheckResponseFromResult(res service.CheckResult) CheckResponse {
	return CheckResponse{
		Matches:       MatchesFromDomain(res.Matches()),
		SentenceCount: res.SentenceCount(),
		ElapsedMillis: res.Elapsed().Milliseconds(),
	}
}

// CheckRecordFromDomain converts a persisted record to its wire form.
func CheckRecordFromDomain(r match.CheckRecord) CheckRecord {
	return CheckRecord{
		ID:            r.ID(),
		Kind:          r.Kind(),
		MatchCount:    r.MatchCount(),
		SentenceCount: r.SentenceCount(),
		ElapsedMillis: r.ElapsedMillis(),
		CreatedAt:     r.CreatedAt(),
	}
}
