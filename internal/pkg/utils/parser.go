package utils

import (
	"booking-service/internal/pkg/constvars"
	"time"
)

func parseDateOnly(value string) (time.Time, error) {
	return time.Parse(constvars.DateOnlyLayout, value)
}

// ParseDateInLocation parses a YYYY-MM-DD date as local midnight in loc.
// Dates travel as plain calendar dates and only become instants in the
// business's own timezone.
func ParseDateInLocation(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constvars.DateOnlyLayout, value, loc)
}
