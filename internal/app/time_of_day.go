package app

import (
	"context"

	"flextime/internal/core"
)

// TimeOfDay extracts the time of day. Fixed mode only accepts
// "yyyy-MM-dd HH:mm:ss" and reports zero values instead of failing.
func (s Service) TimeOfDay(ctx context.Context, req TimeOfDayRequest) (TimeOfDayResult, error) {
	if req.Fixed {
		return TimeOfDayResult{
			Hour:    core.HourOf(req.Input),
			Minute:  core.MinuteOf(req.Input),
			Display: core.ShortTime(req.Input),
		}, nil
	}
	setup, err := s.setupParser(ctx, req.Catalog)
	if err != nil {
		return TimeOfDayResult{}, err
	}
	tod, err := setup.Parser.TimeOfDay(req.Input)
	if err != nil {
		return TimeOfDayResult{}, err
	}
	return TimeOfDayResult{
		Hour:    tod.Hour,
		Minute:  tod.Minute,
		Display: core.FormatTimeOfDay(tod),
	}, nil
}

func (s Service) Elapsed(req ElapsedRequest) ElapsedResult {
	return ElapsedResult{Display: core.FormatElapsed(req.Seconds)}
}
