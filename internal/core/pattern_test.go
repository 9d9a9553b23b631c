package core

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flextime/internal/types"
)

func TestCompilePatternLayouts(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		layout  string
		format  string
		textual bool
	}{
		{name: "iso date", pattern: "yyyy-MM-dd", layout: "2006-01-02"},
		{name: "datetime", pattern: "yyyy-MM-dd HH:mm:ss", layout: "2006-01-02 15:04:05"},
		{name: "quoted T with colon offset", pattern: "yyyy-MM-dd'T'HH:mm:ssZZZZZ", layout: "2006-01-02T15:04:05Z07:00"},
		{name: "fully quoted separators", pattern: "yyyy'-'MM'-'dd'T'HH':'mm':'ss'.'SSSZ", layout: "2006-01-02T15:04:05.000Z0700", format: "2006-01-02T15:04:05.000-0700"},
		{name: "millis", pattern: "yyyy-MM-dd'T'HH:mm:ss.SSSZ", layout: "2006-01-02T15:04:05.000Z0700", format: "2006-01-02T15:04:05.000-0700"},
		{name: "iso basic offset", pattern: "HH:mmXX", layout: "15:04Z0700"},
		{name: "meridiem", pattern: "h:mm a", layout: "3:04 PM", textual: true},
		{name: "long month", pattern: "MMMM d, yyyy", layout: "January 2, 2006", textual: true},
		{name: "short month and weekday", pattern: "EEE, d MMM yyyy", layout: "Mon, 2 Jan 2006", textual: true},
		{name: "day of year", pattern: "yyyy-DDD", layout: "2006-002"},
		{name: "four fraction digits", pattern: "HH:mm:ss.SSSS", layout: "15:04:05.0000"},
		{name: "comma fraction", pattern: "HH:mm:ss,SSS", layout: "15:04:05,000"},
		{name: "two digit year", pattern: "dd.MM.yy", layout: "02.01.06"},
		{name: "compact", pattern: "yyyyMMdd", layout: "20060102"},
		{name: "zone abbreviation", pattern: "HH:mm z", layout: "15:04 MST"},
		{name: "iso offset without colon", pattern: "HH:mmxx", layout: "15:04-0700"},
		{name: "escaped apostrophe", pattern: "h 'o''clock' a", layout: "3 o'clock PM", textual: true},
		{name: "lone apostrophe", pattern: "HH''mm", layout: "15'04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := CompilePattern(types.Pattern{Value: tt.pattern})
			require.NoError(t, err)
			if diff := cmp.Diff(tt.layout, compiled.Layout); diff != "" {
				t.Fatalf("unexpected layout (-want +got):\n%s", diff)
			}
			format := tt.format
			if format == "" {
				format = tt.layout
			}
			assert.Equal(t, format, compiled.FormatLayout)
			assert.Equal(t, tt.textual, compiled.Textual)
			assert.Equal(t, strings.Contains(tt.layout, "PM"), compiled.Meridiem)
		})
	}
}

func TestCompilePatternRejects(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{name: "empty", pattern: "  "},
		{name: "week of year", pattern: "yyyy-'W'ww"},
		{name: "era", pattern: "GGGG"},
		{name: "six digit year", pattern: "yyyyyy-MM-dd"},
		{name: "moment long weekday", pattern: "dddd"},
		{name: "millis in day", pattern: "h:mm:ss A"},
		{name: "unquoted literal letter", pattern: "yyyy-MM-ddTHH"},
		{name: "unterminated quote", pattern: "yyyy 'at"},
		{name: "digit literal", pattern: "yyyy'1'"},
		{name: "fraction without separator", pattern: "ss SSS"},
		{name: "reserved literal", pattern: "HH 'PM'"},
		{name: "weekday joins literal", pattern: "EEE'day'"},
		{name: "underscore before day", pattern: "MM_d"},
		{name: "month then second reads as hour", pattern: "Ms"},
		{name: "too many fraction digits", pattern: "ss.SSSSSSSSSS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompilePattern(types.Pattern{Value: tt.pattern})
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestCompileDefaultPatterns(t *testing.T) {
	compiled, err := CompilePatterns(DefaultPatterns)
	require.NoError(t, err)
	require.Len(t, compiled, len(DefaultPatterns))
	for i, entry := range compiled {
		assert.Equal(t, DefaultPatterns[i], entry.Pattern)
		assert.NotEmpty(t, entry.Layout)
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "01/02/2006", Describe(types.Pattern{Value: "MM/dd/yyyy"}))
	assert.Equal(t, "", Describe(types.Pattern{Value: "GGGG"}))
}
