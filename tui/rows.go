package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arkelian/stygian/types"
)

// row is one visible entry at the current tree level.
type row struct {
	label string
	value types.Value
}

// isTable reports whether the row can be descended into.
func (r row) isTable() bool {
	return r.value.Kind == types.KindTable
}

// rootRows labels the top-level value sequence by position.
func rootRows(values []types.Value) []row {
	rows := make([]row, 0, len(values))
	for i, v := range values {
		rows = append(rows, row{label: "[" + strconv.Itoa(i+1) + "]", value: v})
	}
	return rows
}

// tableRows labels a table level by its keys, preserving wire order.
func tableRows(pairs []types.Pair) []row {
	rows := make([]row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row{label: renderKey(p.Key), value: p.Value})
	}
	return rows
}

// filterRows keeps the rows whose label contains the query,
// case-insensitively. An empty query keeps everything.
func filterRows(rows []row, query string) []row {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	out := make([]row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.label), q) {
			out = append(out, r)
		}
	}
	return out
}

// renderKey formats a table key for the label column.
func renderKey(v types.Value) string {
	switch v.Kind {
	case types.KindString:
		if utf8.Valid(v.Bytes) {
			return string(v.Bytes)
		}
		return fmt.Sprintf("0x%x", v.Bytes)
	case types.KindNumber:
		return "[" + formatNumber(v.Number) + "]"
	case types.KindBool:
		return "[" + strconv.FormatBool(v.Bool) + "]"
	default:
		return "[?]"
	}
}

// renderValue formats a value for the detail column.
func renderValue(v types.Value) string {
	switch v.Kind {
	case types.KindNil:
		return "nil"
	case types.KindBool:
		return strconv.FormatBool(v.Bool)
	case types.KindNumber:
		return formatNumber(v.Number)
	case types.KindString:
		return renderString(v.Bytes)
	case types.KindTable:
		n := len(v.Table)
		if n == 1 {
			return "{1 entry}"
		}
		return fmt.Sprintf("{%d entries}", n)
	default:
		return "?"
	}
}

// formatNumber prints integral doubles without a trailing ".0".
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

const maxStringPreview = 60

// renderString quotes a byte-string payload, truncating long ones and
// hex-dumping non-text ones.
func renderString(b []byte) string {
	if !utf8.Valid(b) {
		s := fmt.Sprintf("0x%x", b)
		if len(s) > maxStringPreview {
			s = s[:maxStringPreview] + "…"
		}
		return s
	}
	s := string(b)
	if utf8.RuneCountInString(s) > maxStringPreview {
		runes := []rune(s)
		s = string(runes[:maxStringPreview]) + "…"
	}
	return strconv.Quote(s)
}
