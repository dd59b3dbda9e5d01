package models

import (
	"errors"
	"fmt"
)

var (
	ErrLocationUnavailable  = errors.New("location unavailable")
	ErrInvalidZone          = errors.New("invalid zone")
	ErrNoZones              = errors.New("no zones configured for location")
	ErrZoneNotFound         = errors.New("zone not found")
	ErrRateLimited          = errors.New("too many attempts")
	ErrDuplicateActiveBreak = errors.New("a break is already running for this time entry, end it first")
	ErrNoActiveBreak        = errors.New("no active break to end")
	ErrBreakNotFound        = errors.New("break session not found")
	ErrTrackingActive       = errors.New("tracking already active for employee")
)

// RateLimitError сообщает, сколько ждать до повторной попытки
type RateLimitError struct {
	Action           string
	RemainingSeconds int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: please wait %d seconds before trying %s again", ErrRateLimited, e.RemainingSeconds, e.Action)
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}
