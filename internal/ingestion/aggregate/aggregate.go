package aggregate

import (
	"math"
	"strings"

	"github.com/evalhub/evalcycle-backend/internal/ingestion/sheet"
)

// UnknownKey collects rows whose grouping key could not be resolved. Callers
// must discard this group explicitly; keeping it visible beats silently
// dropping rows inside the grouping step.
const UnknownKey = "__unknown__"

// GroupRows buckets rows by key while preserving file row order within each
// bucket, which "first row wins" extraction relies on.
func GroupRows(rows []sheet.Row, key func(sheet.Row) (string, bool)) map[string][]sheet.Row {
	groups := make(map[string][]sheet.Row)
	for _, row := range rows {
		k, ok := key(row)
		if !ok || strings.TrimSpace(k) == "" {
			k = UnknownKey
		}
		groups[k] = append(groups[k], row)
	}
	return groups
}

// Mean2 is the arithmetic mean rounded to 2 decimal places. An empty input
// yields 0 by policy; callers must not read that zero as "no data".
func Mean2(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return math.Round(sum/float64(len(vals))*100) / 100
}

// JoinNonEmpty newline-joins the non-empty values; when everything is empty
// the fallback sentence is stored instead of an empty string.
func JoinNonEmpty(vals []string, fallback string) string {
	kept := make([]string, 0, len(vals))
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		kept = append(kept, v)
	}
	if len(kept) == 0 {
		return fallback
	}
	return strings.Join(kept, "\n")
}
