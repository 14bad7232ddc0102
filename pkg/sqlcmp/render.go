package sqlcmp

import (
	"strings"
)

// renderDiffString builds the human-readable diff of the two raw query
// strings. Both queries are collapsed to a single line first, so the diff is
// insensitive to the original formatting: the expected line is prefixed "- ",
// the generated line "+ ", and an annotation line marks the changed character
// span with carets aligned under the generated line.
func renderDiffString(expected, generated string) string {
	expLine := strings.Join(strings.Fields(expected), " ")
	genLine := strings.Join(strings.Fields(generated), " ")
	if expLine == genLine {
		return "  " + expLine
	}

	var sb strings.Builder
	sb.WriteString("- ")
	sb.WriteString(expLine)
	sb.WriteByte('\n')
	sb.WriteString("+ ")
	sb.WriteString(genLine)
	sb.WriteByte('\n')
	sb.WriteString("? ")
	sb.WriteString(caretLine(expLine, genLine))
	return sb.String()
}

// caretLine marks the changed span between the two lines, skipping their
// common prefix and suffix.
func caretLine(expLine, genLine string) string {
	prefix := 0
	for prefix < len(expLine) && prefix < len(genLine) &&
		expLine[prefix] == genLine[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(expLine)-prefix && suffix < len(genLine)-prefix &&
		expLine[len(expLine)-1-suffix] == genLine[len(genLine)-1-suffix] {
		suffix++
	}
	span := len(genLine) - suffix - prefix
	if span < 1 {
		span = 1
	}
	return strings.Repeat(" ", prefix) + strings.Repeat("^", span)
}
