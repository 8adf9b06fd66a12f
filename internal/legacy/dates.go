// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package legacy

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
	zeroDate       = "0000-00-00"
	secondsPerDay  = 24 * 60 * 60
)

// Legacy dates may carry a time part that is ignored.
var dateLayouts = []string{dateLayout, dateTimeLayout, "2006-01-02 15:04:05"}

// Date is a required calendar date. It is written back as midnight of that
// day in ISO format, which is what the legacy server reads.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, b)
	}
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(TruncateToDate(d.Time).Format(dateTimeLayout))
}

// DateOf drops the time part of t.
func DateOf(t time.Time) Date {
	return Date{Time: TruncateToDate(t)}
}

// ZeroDate is an optional calendar date. null, "" and "0000-00-00" read as
// absent; absent is written as null.
type ZeroDate struct {
	Time  time.Time
	Valid bool
}

func (d *ZeroDate) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*d = ZeroDate{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, b)
	}
	if s == "" || s == zeroDate {
		*d = ZeroDate{}
		return nil
	}
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	*d = ZeroDate{Time: t, Valid: true}
	return nil
}

func (d ZeroDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(TruncateToDate(d.Time).Format(dateTimeLayout))
}

// Ptr returns nil for an absent date.
func (d ZeroDate) Ptr() *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

// ZeroDateOf is the inverse of [ZeroDate.Ptr]. The time part is dropped.
func ZeroDateOf(p *time.Time) ZeroDate {
	if p == nil {
		return ZeroDate{}
	}
	return ZeroDate{Time: TruncateToDate(*p), Valid: true}
}

// DateTime is a full timestamp without a zone, used by the fields the
// legacy server stores on behalf of newer sites.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, b)
	}
	for _, layout := range append([]string{time.RFC3339Nano}, dateLayouts...) {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(dateTimeLayout))
}

// DateTimeOf returns nil for a nil t.
func DateTimeOf(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	return &DateTime{Time: *t}
}

// TimePtr is the inverse of [DateTimeOf].
func (d *DateTime) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// TimeOfDay is a time stored as seconds since midnight. Values that do not
// fit in a day read as midnight.
type TimeOfDay int64

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var secs int64
	if err := json.Unmarshal(b, &secs); err != nil || secs < 0 || secs >= secondsPerDay {
		*t = 0
		return nil
	}
	*t = TimeOfDay(secs)
	return nil
}

// TimeOfDayOf returns the seconds elapsed since midnight of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// Duration converts t into an offset from midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t) * time.Second
}

// DateAndTime joins a date and a time of day.
func DateAndTime(d time.Time, t TimeOfDay) time.Time {
	return TruncateToDate(d).Add(t.Duration())
}

// TruncateToDate drops the time part of t and moves it to UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TruncateToDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
