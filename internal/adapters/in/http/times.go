package http

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// timeParser reads client timestamps. Values without an offset are taken in
// the service time zone, which is also the zone routes are rendered in.
type timeParser struct {
	location *time.Location
	config   *now.Config
}

func newTimeParser(location *time.Location) timeParser {
	if location == nil {
		location = time.Local
	}
	return timeParser{
		location: location,
		config: &now.Config{
			WeekStartDay: time.Monday,
			TimeLocation: location,
			TimeFormats:  append([]string{"2006-01-02T15:04:05"}, now.TimeFormats...),
		},
	}
}

func (p timeParser) parseOptional(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return &t, nil
	}
	t, err := p.config.Parse(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (p timeParser) format(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(p.location).Format(routeTimeLayout)
	return &s
}
