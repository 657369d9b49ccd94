// Package tokenizer splits a raw input line into tokens, honoring quoting,
// escape sequences, and the bracket array syntax. It does not interpret
// tokens as parameter names, values, or flags; that is the dispatcher's job.
package tokenizer

import (
	"strings"

	"conshell/pkg/contypes"
)

// Tokenize splits a line on unquoted whitespace. A double quote opens a
// quoted span in which whitespace is literal and \" \\ \n \t are unescaped
// in place. A top-level [ opens an array token that runs to the matching ];
// nested brackets are not supported. An empty or all-whitespace line yields
// zero tokens. Malformed input fails with a FormatError whose message is
// deterministic for identical input.
func Tokenize(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inToken := false

	flush := func() {
		if inToken {
			tokens = append(tokens, current.String())
			current.Reset()
			inToken = false
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			flush()
		case c == '"':
			body, next, err := scanQuoted(line, i)
			if err != nil {
				return nil, err
			}
			current.WriteString(body)
			inToken = true
			i = next
		case c == '[' && !inToken:
			body, next, err := scanArray(line, i)
			if err != nil {
				return nil, err
			}
			current.WriteString(body)
			inToken = true
			i = next
		default:
			current.WriteByte(c)
			inToken = true
		}
	}
	flush()
	return tokens, nil
}

// scanQuoted consumes a quoted span starting at the opening quote and
// returns the unescaped body and the index of the closing quote.
func scanQuoted(line string, start int) (string, int, error) {
	var body strings.Builder
	for i := start + 1; i < len(line); i++ {
		c := line[i]
		switch c {
		case '"':
			return body.String(), i, nil
		case '\\':
			if i+1 >= len(line) {
				return "", 0, &contypes.FormatError{Offset: i, Reason: "escape sequence is not finished"}
			}
			i++
			switch line[i] {
			case '"':
				body.WriteByte('"')
			case '\\':
				body.WriteByte('\\')
			case 'n':
				body.WriteByte('\n')
			case 't':
				body.WriteByte('\t')
			default:
				return "", 0, &contypes.FormatError{Offset: i - 1, Reason: "unknown escape sequence \\" + string(line[i])}
			}
		default:
			body.WriteByte(c)
		}
	}
	return "", 0, &contypes.FormatError{Offset: start, Reason: "quoted string is not terminated"}
}

// scanArray consumes a bracket array token starting at the opening bracket.
// The token keeps its brackets; its elements are not tokenized further.
// Nesting is a known gap and fails rather than silently mis-parsing.
func scanArray(line string, start int) (string, int, error) {
	var body strings.Builder
	body.WriteByte('[')
	for i := start + 1; i < len(line); i++ {
		c := line[i]
		switch c {
		case ']':
			body.WriteByte(']')
			return body.String(), i, nil
		case '[':
			return "", 0, &contypes.FormatError{Offset: i, Reason: "nested arrays are not supported"}
		default:
			body.WriteByte(c)
		}
	}
	return "", 0, &contypes.FormatError{Offset: start, Reason: "array is not terminated"}
}

// Quote renders a value so that tokenizing it again yields the same value:
// the token is wrapped in double quotes and quote, backslash, newline, and
// tab characters are escaped.
func Quote(value string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(value[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}
