package cart

import (
	"bytes"
	"sort"
	"strconv"
)

// SortLines orders lines by total descending, then name and unit ascending.
func SortLines(lines []Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.MeasurementUnit < b.MeasurementUnit
	})
}

// Render writes one "{name} ({unit}) — {total}" line per entry, separated
// by newlines with no trailing newline. No lines render as an empty body.
func Render(lines []Line) []byte {
	var buf bytes.Buffer
	for i, l := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(l.Name)
		buf.WriteString(" (")
		buf.WriteString(l.MeasurementUnit)
		buf.WriteString(") — ")
		buf.WriteString(strconv.FormatInt(l.Total, 10))
	}
	return buf.Bytes()
}
