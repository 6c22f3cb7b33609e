package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyInterval = errors.New("interval end must be after start")
	ErrNoteTooLong   = errors.New("special requests exceed maximum length")
)

const MaxNoteLength = 500

// Interval is a half-open time range [start, end). Zero-length intervals are
// never valid.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrEmptyInterval
	}
	return Interval{start: start, end: end}, nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Days returns the billable duration in whole calendar days, rounded up. A
// booking that spans any part of a day pays for the full day.
func (iv Interval) Days() int {
	const day = 24 * time.Hour
	d := iv.Duration()
	days := int(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

// Overlaps uses half-open semantics: [a,b) and [c,d) intersect iff a < d && b > c.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && iv.end.After(other.start)
}

// Money is an amount in a currency's minor units. The engine stores and
// compares amounts; it never converts between currencies.
type Money struct {
	amount   int64
	currency string
}

func NewMoney(amount int64, currency string) Money {
	return Money{amount: amount, currency: currency}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

// Note holds the traveler's optional special requests. Empty is fine.
type Note struct {
	value string
}

func NewNote(s string) (Note, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: t}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
