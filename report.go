package envdsl

import (
	"strings"

	"golang.org/x/text/width"
)

const (
	validHeader     = "Configuration read:"
	invalidHeader   = "Invalid configuration:"
	missingHeader   = "Missing values for following configuration keys:"
	malformedHeader = "Malformed values for following configuration keys:"
)

// ValidMessage renders one line per success: key, type and display value,
// each column padded to its widest cell.
func ValidMessage(r *Result) string {
	rows := make([][]string, len(r.Successes))
	for i, s := range r.Successes {
		rows[i] = []string{keyCell(s.Key), s.Type, successDisplay(s)}
	}
	return strings.Join(append([]string{validHeader}, renderTable(rows)...), "\n")
}

// InvalidMessage renders the missing keys table and the malformed values
// table. A table without rows is left out with its header.
func InvalidMessage(r *Result) string {
	var lines []string

	if len(r.MissingKeys) > 0 {
		rows := make([][]string, len(r.MissingKeys))
		for i, m := range r.MissingKeys {
			rows[i] = []string{keyCell(m.Key), m.Type}
		}
		lines = append(lines, missingHeader)
		lines = append(lines, renderTable(rows)...)
	}

	if len(r.MalformedValues) > 0 {
		rows := make([][]string, len(r.MalformedValues))
		for i, m := range r.MalformedValues {
			rows[i] = []string{keyCell(m.Key), m.Type, malformedDisplay(m), m.Message}
		}
		lines = append(lines, malformedHeader)
		lines = append(lines, renderTable(rows)...)
	}

	return invalidHeader + "\n" + strings.Join(lines, "\n")
}

func keyCell(key string) string {
	return " - " + key
}

func successDisplay(s Success) string {
	switch {
	case s.Sensitive:
		return sensitiveDisplay
	case s.Value == nil:
		return undefinedDisplay
	default:
		return formatValue(s.Value)
	}
}

func malformedDisplay(m MalformedValue) string {
	if m.Sensitive {
		return sensitiveDisplay
	}
	return m.Raw
}

// renderTable pads every cell to its column's widest rendered cell and joins
// the cells of a row with one space. Rows must have equal length.
func renderTable(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], displayWidth(cell))
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = cell + strings.Repeat(" ", widths[c]-displayWidth(cell))
		}
		lines[i] = strings.Join(cells, " ")
	}
	return lines
}

// displayWidth counts terminal columns: East Asian wide and fullwidth runes
// take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
