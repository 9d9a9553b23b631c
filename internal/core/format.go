package core

import (
	"fmt"
	"math"
	"time"

	"flextime/internal/types"
)

// Format renders t under pattern in loc. A nil loc means time.Local, not
// UTC: display follows the caller's zone while parsing is pinned.
func Format(t time.Time, pattern types.Pattern, loc *time.Location) (string, error) {
	compiled, err := CompilePattern(pattern)
	if err != nil {
		return "", err
	}
	return FormatCompiled(t, compiled, loc), nil
}

func FormatCompiled(t time.Time, pattern CompiledPattern, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(pattern.FormatLayout)
}

// MustFormat is Format for patterns known to compile, such as the
// built-in candidates.
func MustFormat(t time.Time, pattern types.Pattern, loc *time.Location) string {
	out, err := Format(t, pattern, loc)
	if err != nil {
		panic(err)
	}
	return out
}

var fixedParser = mustFixedParser()

func mustFixedParser() Parser {
	parser, err := NewParser(ParserConfig{Patterns: []types.Pattern{FixedPattern}})
	if err != nil {
		panic(err)
	}
	return parser
}

// HourOf returns the hour of a "yyyy-MM-dd HH:mm:ss" string, or 0 when it
// does not parse.
func HourOf(input string) int {
	parsed, err := fixedParser.Parse(input)
	if err != nil {
		return 0
	}
	return parsed.Hour()
}

// MinuteOf returns the minute of a "yyyy-MM-dd HH:mm:ss" string, or 0 when
// it does not parse.
func MinuteOf(input string) int {
	parsed, err := fixedParser.Parse(input)
	if err != nil {
		return 0
	}
	return parsed.Minute()
}

// ShortTime renders a "yyyy-MM-dd HH:mm:ss" string as "H:MM". Unparseable
// input yields "".
func ShortTime(input string) string {
	parsed, err := fixedParser.Parse(input)
	if err != nil {
		return ""
	}
	return FormatTimeOfDay(types.TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()})
}

func FormatTimeOfDay(tod types.TimeOfDay) string {
	return fmt.Sprintf("%d:%02d", tod.Hour, tod.Minute)
}

// maxElapsedSeconds is the largest integer a float64 holds exactly.
const maxElapsedSeconds = 1 << 53

// FormatElapsed renders a duration in seconds for playback displays:
// "07" below ten seconds, "42" below a minute, "M:SS" below an hour and
// "H:MM:SS" above. Negative and NaN input reads as zero; anything past
// 2^53 seconds, +Inf included, is clamped there.
func FormatElapsed(seconds float64) string {
	switch {
	case math.IsNaN(seconds) || seconds < 0:
		seconds = 0
	case seconds > maxElapsedSeconds:
		seconds = maxElapsedSeconds
	}
	total := int64(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	switch {
	case total >= 3600:
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	case total >= 60:
		return fmt.Sprintf("%d:%02d", minutes, secs)
	default:
		return fmt.Sprintf("%02d", secs)
	}
}
