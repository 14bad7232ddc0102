package sqlcmp

import (
	"strings"
	"unicode/utf8"
)

// Tokenize splits a SQL string into an ordered sequence of lexical tokens.
// String literals, quoted identifiers and multi-character operators stay
// whole, comments and whitespace are dropped.
func Tokenize(input string) []string {
	tokens := make([]string, 0, 16)
	i, n := 0, len(input)
	for i < n {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '-' && i+1 < n && input[i+1] == '-', c == '#':
			for i < n && input[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < n && input[i+1] == '*':
			end := strings.Index(input[i+2:], "*/")
			if end == -1 {
				i = n
			} else {
				i += 2 + end + 2
			}
		case c == '\'' || c == '"' || c == '`':
			j := scanQuoted(input, i)
			tokens = append(tokens, input[i:j])
			i = j
		case isDigit(c) || (c == '.' && i+1 < n && isDigit(input[i+1])):
			j := scanNumber(input, i)
			tokens = append(tokens, input[i:j])
			i = j
		case isWordPart(c):
			j := i
			for j < n && isWordPart(input[j]) {
				j++
			}
			tokens = append(tokens, input[i:j])
			i = j
		default:
			if i+1 < n {
				switch input[i : i+2] {
				case ">=", "<=", "<>", "!=", "||", "&&", "<<", ">>", ":=":
					tokens = append(tokens, input[i:i+2])
					i += 2
					continue
				}
			}
			tokens = append(tokens, string(c))
			i++
		}
	}
	return tokens
}

// scanQuoted returns the end offset of the quoted literal or identifier
// starting at offset start. Backslash escapes and doubled quote characters
// stay inside the token.
func scanQuoted(input string, start int) int {
	quote := input[start]
	j := start + 1
	n := len(input)
	for j < n {
		switch {
		case input[j] == '\\' && quote != '`' && j+1 < n:
			j += 2
		case input[j] == quote:
			if j+1 < n && input[j+1] == quote {
				j += 2
				continue
			}
			return j + 1
		default:
			j++
		}
	}
	return n
}

// scanNumber returns the end offset of the numeric literal starting at offset
// start, covering decimals and exponents.
func scanNumber(input string, start int) int {
	j := start
	n := len(input)
	for j < n && (isDigit(input[j]) || input[j] == '.') {
		j++
	}
	if j < n && (input[j] == 'e' || input[j] == 'E') {
		k := j + 1
		if k < n && (input[k] == '+' || input[k] == '-') {
			k++
		}
		if k < n && isDigit(input[k]) {
			j = k
			for j < n && isDigit(input[j]) {
				j++
			}
		}
	}
	return j
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordPart(c byte) bool {
	return c == '_' || c == '$' || c == '@' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		isDigit(c) || c >= utf8.RuneSelf
}

// Canonicalize rewrites a query into a normal form with uniform keyword
// casing, identifier quoting and literal spelling. When the query cannot be
// parsed or rendered the input is returned unchanged, a failed rewrite never
// blocks the comparison.
func Canonicalize(query string) string {
	stmt, err := parseQuery(query)
	if err != nil {
		return query
	}
	text, err := restoreNode(stmt)
	if err != nil {
		return query
	}
	return text
}

// TokenizeNormalized tokenizes a query, canonicalizing it first when optimize
// is set.
func TokenizeNormalized(query string, optimize bool) []string {
	if optimize {
		query = Canonicalize(query)
	}
	return Tokenize(query)
}
