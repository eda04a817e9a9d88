package recommend

import (
	"encoding/json"
	"strings"

	"github.com/spendwise/advisor-api/internal/domain"
)

// ParseRecommendations extracts structured recommendations from free-form
// model output. It looks for the first JSON array substring and keeps every
// entry that carries non-empty category and advice strings, dropping
// malformed entries. When no valid array is found the whole trimmed text is
// wrapped as a single "General" recommendation. This function never fails;
// parse problems degrade to the wrapped form.
func ParseRecommendations(raw string) []domain.Recommendation {
	if recs := parseArray(raw); recs != nil {
		return recs
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []domain.Recommendation{}
	}

	return []domain.Recommendation{{Category: "General", Advice: trimmed}}
}

// parseArray attempts to parse the first [...] substring of raw. Returns
// nil when no valid array of recommendation objects is present.
func parseArray(raw string) []domain.Recommendation {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &entries); err != nil {
		return nil
	}

	recs := make([]domain.Recommendation, 0, len(entries))
	for _, entry := range entries {
		var rec domain.Recommendation
		if err := json.Unmarshal(entry, &rec); err != nil {
			continue
		}
		if rec.Category == "" || rec.Advice == "" {
			continue
		}
		recs = append(recs, rec)
	}

	if len(recs) == 0 {
		return nil
	}

	return recs
}
