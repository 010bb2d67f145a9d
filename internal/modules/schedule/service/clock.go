package service

import (
	"regexp"
	"strconv"
	"time"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/schedule/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/errors"
	"github.com/samber/oops"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseClock parses a 24h HH:MM time of day
func ParseClock(s string) (domain.Clock, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return domain.Clock{}, oops.With("clock", s).Wrap(errors.ErrInvalidClock)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return domain.Clock{}, oops.With("clock", s).Wrap(errors.ErrInvalidClock)
	}
	return domain.Clock{Hour: hour, Minute: minute}, nil
}

// NextOccurrence is today's instance of c in loc, or tomorrow's when today's
// is not after now.
func NextOccurrence(c domain.Clock, now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	y, mo, d := local.Date()
	fire := time.Date(y, mo, d, c.Hour, c.Minute, 0, 0, loc)
	if !fire.After(now) {
		fire = time.Date(y, mo, d+1, c.Hour, c.Minute, 0, 0, loc)
	}
	return fire
}
