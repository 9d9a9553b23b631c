package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/text/language"

	"flextime/internal/types"
)

// ErrNoPatternMatched is the only parse failure: none of the candidate
// patterns consumed the whole input.
var ErrNoPatternMatched = errors.New("no candidate pattern matched")

// FixedPattern is the layout used by the hour, minute and short time
// helpers.
var FixedPattern = types.Pattern{Name: "datetime", Value: "yyyy-MM-dd HH:mm:ss"}

// DefaultPatterns is the built-in candidate list, highest priority first.
var DefaultPatterns = []types.Pattern{
	{Name: "iso8601-colon-offset", Value: "yyyy-MM-dd'T'HH:mm:ssZZZZZ"},
	{Name: "iso8601-offset", Value: "yyyy'-'MM'-'dd'T'HH':'mm':'ssZ"},
	{Name: "iso8601-millis-quoted", Value: "yyyy'-'MM'-'dd'T'HH':'mm':'ss'.'SSSZ"},
	{Name: "iso8601-millis", Value: "yyyy-MM-dd'T'HH:mm:ss.SSSZ"},
	{Name: "datetime", Value: "yyyy-MM-dd HH:mm:ss"},
	{Name: "datetime-meridiem", Value: "yyyy-MM-dd HH:mm a"},
	{Name: "datetime-minutes", Value: "yyyy-MM-dd HH:mm"},
	{Name: "date", Value: "yyyy-MM-dd"},
	{Name: "clock12-seconds", Value: "h:mm:ss a"},
	{Name: "clock12", Value: "h:mm a"},
	{Name: "us-date", Value: "MM/dd/yyyy"},
	{Name: "us-datetime", Value: "MM/dd/yyyy HH:mm:ss"},
	{Name: "long-date", Value: "MMMM d, yyyy"},
	{Name: "ordinal-date", Value: "yyyy-DDD"},
	{Name: "clock-fraction", Value: "HH:mm:ss.SSSS"},
	{Name: "clock-seconds", Value: "HH:mm:ss"},
	{Name: "clock", Value: "HH:mm"},
	{Name: "clock24-meridiem", Value: "HH:mm a"},
	{Name: "hour", Value: "HH"},
}

// ParserConfig is the immutable configuration of a Parser. Zero values
// select the defaults: the built-in patterns, UTC, American English and
// time.Now.
type ParserConfig struct {
	Patterns []types.Pattern
	Location *time.Location
	Locale   language.Tag
	Clock    func() time.Time
}

// Match is a successful parse together with the candidate that won.
type Match struct {
	Time    time.Time
	Index   int
	Pattern types.Pattern
}

// Parser tries an ordered list of patterns against its input and returns
// the first full match. It holds no mutable state and is safe for
// concurrent use.
type Parser struct {
	patterns []CompiledPattern
	location *time.Location
	locale   language.Tag
	clock    func() time.Time
}

func NewParser(cfg ParserConfig) (Parser, error) {
	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	compiled, err := CompilePatterns(patterns)
	if err != nil {
		return Parser{}, err
	}
	locale := cfg.Locale
	if locale == language.Und {
		locale = language.AmericanEnglish
	}
	if !isEnglish(locale) {
		for _, entry := range compiled {
			if entry.Textual {
				return Parser{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("pattern %q uses month or weekday names, unsupported for locale %s", entry.Pattern.Value, locale))
			}
		}
	}
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return Parser{
		patterns: compiled,
		location: location,
		locale:   locale,
		clock:    clock,
	}, nil
}

// DefaultParser returns a parser over the built-in patterns in UTC.
func DefaultParser() Parser {
	parser, err := NewParser(ParserConfig{})
	if err != nil {
		panic(err)
	}
	return parser
}

func (p Parser) Location() *time.Location {
	return p.location
}

func (p Parser) Locale() language.Tag {
	return p.locale
}

// Patterns returns a copy of the compiled candidate list in priority order.
func (p Parser) Patterns() []CompiledPattern {
	return append([]CompiledPattern(nil), p.patterns...)
}

// Parse returns the time described by input under the first candidate
// pattern that consumes it completely.
func (p Parser) Parse(input string) (time.Time, error) {
	match, err := p.ParseMatch(input)
	if err != nil {
		return time.Time{}, err
	}
	return match.Time, nil
}

func (p Parser) ParseMatch(input string) (Match, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed != "" {
		for i, entry := range p.patterns {
			value := trimmed
			if entry.Meridiem {
				value = upperMeridiem(trimmed)
			}
			parsed, err := time.ParseInLocation(entry.Layout, value, p.location)
			if err == nil {
				return Match{Time: parsed.In(p.location), Index: i, Pattern: entry.Pattern}, nil
			}
		}
	}
	return Match{Index: -1}, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s: %q", ErrNoPatternMatched, trimmed)).
		WithCause(ErrNoPatternMatched)
}

// ParseOr returns fallback when no pattern matches.
func (p Parser) ParseOr(input string, fallback time.Time) time.Time {
	parsed, err := p.Parse(input)
	if err != nil {
		return fallback
	}
	return parsed
}

// ParseOrNow substitutes the parser clock's current time for input no
// pattern matches. Callers cannot tell a miss from an input that really
// was "now"; use Parse when that matters.
func (p Parser) ParseOrNow(input string) time.Time {
	parsed, err := p.Parse(input)
	if err != nil {
		return p.clock()
	}
	return parsed
}

// TimeOfDay parses input with the full candidate list and returns its
// hour and minute in the parser location.
func (p Parser) TimeOfDay(input string) (types.TimeOfDay, error) {
	parsed, err := p.Parse(input)
	if err != nil {
		return types.TimeOfDay{}, err
	}
	return types.TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

// upperMeridiem upper-cases standalone "am" and "pm" in any case mix. Go's
// PM element only accepts "AM" and "PM".
func upperMeridiem(input string) string {
	out := []byte(input)
	for i := 0; i+1 < len(out); i++ {
		first, second := out[i]|0x20, out[i+1]|0x20
		if (first != 'a' && first != 'p') || second != 'm' {
			continue
		}
		if isASCIILetterAt(out, i-1) || isASCIILetterAt(out, i+2) {
			continue
		}
		out[i] &^= 0x20
		out[i+1] &^= 0x20
		i++
	}
	return string(out)
}

func isASCIILetterAt(b []byte, i int) bool {
	if i < 0 || i >= len(b) {
		return false
	}
	c := b[i] | 0x20
	return c >= 'a' && c <= 'z'
}

// IsNoMatch reports whether err is a parse miss.
func IsNoMatch(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoPatternMatched) {
		return true
	}
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return strings.HasPrefix(builder.Msg, ErrNoPatternMatched.Error())
	}
	return false
}

func isEnglish(tag language.Tag) bool {
	base, _ := tag.Base()
	return base.String() == "en"
}
