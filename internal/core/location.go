package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/text/language"
)

// ResolveLocation loads an IANA zone name. An empty name returns fallback
// and "Local" returns time.Local.
func ResolveLocation(name string, fallback *time.Location) (*time.Location, error) {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return fallback, nil
	case strings.EqualFold(trimmed, "local"):
		return time.Local, nil
	case strings.EqualFold(trimmed, "utc"):
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(trimmed)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown timezone: %s", trimmed)).
			WithCause(err)
	}
	return loc, nil
}

// ResolveLocale parses a BCP 47 tag. An empty value selects American
// English, the locale Go's month and weekday names are written in.
func ResolveLocale(value string) (language.Tag, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return language.AmericanEnglish, nil
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return language.Und, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid locale: %s", trimmed)).
			WithCause(err)
	}
	return tag, nil
}
