package timezone

import (
	"errors"
	"strings"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ======================================================
// PARSING
// ======================================================

var ErrInvalidDate = errors.New("invalid date")

const DateLayout = "2006-01-02"

// layouts aceitos, do mais específico para o menos
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateLayout,
}

// Parse lê uma data/hora em qualquer dos formatos aceitos. Strings sem
// fuso são interpretadas em loc. dateOnly indica o formato YYYY-MM-DD.
func Parse(s string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, ErrInvalidDate
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range dateTimeLayouts {
		if parsed, perr := time.ParseInLocation(layout, s, loc); perr == nil {
			return parsed, layout == DateLayout, nil
		}
	}
	return time.Time{}, false, ErrInvalidDate
}

func IsParseable(s string) bool {
	_, _, err := Parse(s, time.UTC)
	return err == nil
}

// ======================================================
// WINDOWS
// ======================================================

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay é o último instante representável do dia (23:59:59.999999999).
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// PreviousMonth returns a time inside the month before t.
func PreviousMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 0, -1)
}
