package timezone

import (
	"hostel/config"
	"hostel/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

// ISOLayout matches the timestamps written by the booking and registration flows.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Kolkata', 'UTC', 'America/New_York'")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}
	return appLocation
}

// ISOString renders t in UTC with millisecond precision.
func ISOString(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseDate parses a calendar date (YYYY-MM-DD) at UTC midnight.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(constant.CalendarFormat, value)
}

