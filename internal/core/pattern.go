package core

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"flextime/internal/types"
)

// CompiledPattern is a candidate pattern translated to a Go reference
// layout. Layout is used for parsing and FormatLayout for rendering; they
// differ only where Go's parse element is more lenient than the field's
// output form. Textual is set when the layout renders month, weekday or
// meridiem names, which Go only knows in English. Meridiem marks an `a`
// field, whose input is upper-cased before parsing.
type CompiledPattern struct {
	Pattern      types.Pattern
	Layout       string
	FormatLayout string
	Textual      bool
	Meridiem     bool
}

// tokenLayouts maps an LDML field letter and run length to the Go layout
// element. Lengths not listed are unsupported.
var tokenLayouts = map[rune]map[int]string{
	'y': {1: "2006", 2: "06", 3: "2006", 4: "2006"},
	'M': {1: "1", 2: "01", 3: "Jan", 4: "January"},
	'L': {1: "1", 2: "01", 3: "Jan", 4: "January"},
	'd': {1: "2", 2: "02"},
	'D': {3: "002"},
	'E': {1: "Mon", 2: "Mon", 3: "Mon", 4: "Monday"},
	'H': {1: "15", 2: "15"},
	'h': {1: "3", 2: "03"},
	'm': {1: "4", 2: "04"},
	's': {1: "5", 2: "05"},
	'a': {1: "PM"},
	'Z': {1: "Z0700", 2: "Z0700", 3: "Z0700", 5: "Z07:00"},
	'X': {1: "Z07", 2: "Z0700", 3: "Z07:00"},
	'x': {1: "-07", 2: "-0700", 3: "-07:00"},
	'z': {1: "MST", 2: "MST", 3: "MST"},
}

// formatOverrides replaces parse elements when rendering. Z accepts "Z"
// for UTC on input but always prints a numeric offset.
var formatOverrides = map[rune]map[int]string{
	'Z': {1: "-0700", 2: "-0700", 3: "-0700"},
}

var textualFields = map[rune]struct{}{
	'E': {},
	'a': {},
}

// reservedLiterals are Go layout words that would be read as fields if
// they appeared verbatim in literal text.
var reservedLiterals = []string{"Jan", "Mon", "MST", "PM", "pm"}

type patternToken struct {
	field   rune
	count   int
	literal string
}

// CompilePattern translates an LDML pattern into a Go layout. Runs of the
// same ASCII letter form a field, text inside single quotes is literal and
// '' is an apostrophe.
func CompilePattern(pattern types.Pattern) (CompiledPattern, error) {
	value := pattern.Value
	if strings.TrimSpace(value) == "" {
		return CompiledPattern{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pattern must not be empty")
	}
	tokens, err := tokenizePattern(value)
	if err != nil {
		return CompiledPattern{}, err
	}
	var layout, formatLayout strings.Builder
	textual, meridiem := false, false
	for i, token := range tokens {
		if token.field == 0 {
			if err := checkLiteral(value, token.literal, tokens, i); err != nil {
				return CompiledPattern{}, err
			}
			layout.WriteString(token.literal)
			formatLayout.WriteString(token.literal)
			continue
		}
		element, err := fieldLayout(value, token)
		if err != nil {
			return CompiledPattern{}, err
		}
		if token.field == 'S' {
			current := layout.String()
			if !strings.HasSuffix(current, ".") && !strings.HasSuffix(current, ",") {
				return CompiledPattern{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("fractional seconds must follow '.' or ',' in pattern %q", value))
			}
		}
		if current := layout.String(); element == "5" && strings.HasSuffix(current, "1") && !strings.HasSuffix(current, "01") {
			return CompiledPattern{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("adjacent fields in pattern %q read as an hour", value))
		}
		if _, ok := textualFields[token.field]; ok || (isMonthField(token.field) && token.count >= 3) {
			textual = true
		}
		if token.field == 'a' {
			meridiem = true
		}
		layout.WriteString(element)
		if override, ok := formatOverrides[token.field][token.count]; ok {
			element = override
		}
		formatLayout.WriteString(element)
	}
	return CompiledPattern{
		Pattern:      pattern,
		Layout:       layout.String(),
		FormatLayout: formatLayout.String(),
		Textual:      textual,
		Meridiem:     meridiem,
	}, nil
}

// CompilePatterns compiles an ordered candidate list, keeping its order.
func CompilePatterns(patterns []types.Pattern) ([]CompiledPattern, error) {
	compiled := make([]CompiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		entry, err := CompilePattern(pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, entry)
	}
	return compiled, nil
}

// Describe returns the Go layout for a pattern, or an empty string when it
// does not compile.
func Describe(pattern types.Pattern) string {
	compiled, err := CompilePattern(pattern)
	if err != nil {
		return ""
	}
	return compiled.Layout
}

func tokenizePattern(value string) ([]patternToken, error) {
	var tokens []patternToken
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, patternToken{literal: literal.String()})
			literal.Reset()
		}
	}
	for i := 0; i < len(value); {
		r, size := utf8.DecodeRuneInString(value[i:])
		switch {
		case r == '\'':
			if strings.HasPrefix(value[i+1:], "'") {
				literal.WriteByte('\'')
				i += 2
				continue
			}
			next, err := readQuoted(value, i+1, &literal)
			if err != nil {
				return nil, err
			}
			i = next
		case isPatternLetter(r):
			flush()
			count := 1
			for i+count < len(value) && rune(value[i+count]) == r {
				count++
			}
			tokens = append(tokens, patternToken{field: r, count: count})
			i += count
		default:
			literal.WriteRune(r)
			i += size
		}
	}
	flush()
	return tokens, nil
}

// readQuoted copies a quoted section starting after its opening quote and
// returns the index just past the closing quote.
func readQuoted(value string, start int, literal *strings.Builder) (int, error) {
	for i := start; i < len(value); i++ {
		if value[i] != '\'' {
			literal.WriteByte(value[i])
			continue
		}
		if i+1 < len(value) && value[i+1] == '\'' {
			literal.WriteByte('\'')
			i++
			continue
		}
		return i + 1, nil
	}
	return 0, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unterminated quote in pattern %q", value))
}

func fieldLayout(value string, token patternToken) (string, error) {
	if token.field == 'S' {
		if token.count > 9 {
			return "", unsupportedField(value, token)
		}
		return strings.Repeat("0", token.count), nil
	}
	lengths, ok := tokenLayouts[token.field]
	if !ok {
		return "", unsupportedField(value, token)
	}
	element, ok := lengths[token.count]
	if !ok {
		return "", unsupportedField(value, token)
	}
	return element, nil
}

func unsupportedField(value string, token patternToken) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unsupported field %q in pattern %q", strings.Repeat(string(token.field), token.count), value))
}

// checkLiteral rejects literal text Go would misread as a layout element,
// either on its own or joined with the neighbouring field.
func checkLiteral(value string, literal string, tokens []patternToken, index int) error {
	for _, r := range literal {
		if r >= '0' && r <= '9' {
			return ambiguousLiteral(value, literal)
		}
	}
	for _, reserved := range reservedLiterals {
		if strings.Contains(literal, reserved) {
			return ambiguousLiteral(value, literal)
		}
	}
	if index > 0 {
		prev := tokens[index-1]
		if prev.field == 'E' && prev.count < 4 && strings.HasPrefix(literal, "day") {
			return ambiguousLiteral(value, literal)
		}
		if isMonthField(prev.field) && prev.count == 3 && strings.HasPrefix(literal, "uary") {
			return ambiguousLiteral(value, literal)
		}
	}
	if index+1 < len(tokens) && strings.HasSuffix(literal, "_") {
		next := tokens[index+1]
		if next.field == 'd' && next.count == 1 {
			return ambiguousLiteral(value, literal)
		}
	}
	return nil
}

func ambiguousLiteral(value string, literal string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("literal %q in pattern %q collides with a layout element", literal, value))
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isMonthField(r rune) bool {
	return r == 'M' || r == 'L'
}
