package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for rental period dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// RentalDays returns the inclusive day span of a rental period: both the
// start and the end date are counted, so a same-day rental is 1 day.
func RentalDays(startDate, endDate time.Time) (int, error) {
	start := startDate.Truncate(24 * time.Hour)
	end := endDate.Truncate(24 * time.Hour)
	if end.Before(start) {
		return 0, fmt.Errorf("end date must be on or after start date")
	}
	days := int(end.Sub(start).Hours()/24) + 1
	return days, nil
}

// TotalPrice computes the frozen rental total: item price times the
// inclusive day span.
func TotalPrice(price float64, startDate, endDate time.Time) (float64, error) {
	days, err := RentalDays(startDate, endDate)
	if err != nil {
		return 0, err
	}
	return price * float64(days), nil
}
