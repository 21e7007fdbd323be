package utils

import "time"

const dayKeyLayout = "2006-01-02"

// LoadLocation resolves an IANA zone name, falling back to UTC.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}

// ResolveLocation prefers a caller-supplied zone and falls back to the app zone.
func ResolveLocation(requested string, fallback *time.Location) *time.Location {
	if requested != "" {
		if loc, err := time.LoadLocation(requested); err == nil {
			return loc
		}
	}
	if fallback == nil {
		return time.UTC
	}
	return fallback
}

// DayKey names the local calendar day containing t, e.g. 2025-09-24.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyLayout)
}
