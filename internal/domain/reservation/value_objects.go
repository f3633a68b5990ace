package reservation

import (
	"errors"
	"time"
)

// StayPeriod is the half-open interval [checkIn, checkOut) of a stay.
// Both bounds are calendar dates normalized to midnight UTC.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	ci := toDate(checkIn)
	co := toDate(checkOut)
	if !co.After(ci) {
		return StayPeriod{}, errors.New("check-out must be after check-in")
	}
	return StayPeriod{checkIn: ci, checkOut: co}, nil
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// Overlaps reports whether two half-open intervals intersect. A stay that
// checks out the day another checks in does not overlap.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && p.checkOut.After(other.checkIn)
}

func (p StayPeriod) IsZero() bool {
	return p.checkIn.IsZero() && p.checkOut.IsZero()
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Guest is owned by exactly one reservation and only ever written as part of
// a reservation write.
type Guest struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	BirthDate    *time.Time
	Nationality  string
	DocumentType string
	DocumentNo   string
	Registered   bool
	RegisterCode string
}

func (g Guest) FullName() string {
	switch {
	case g.FirstName == "":
		return g.LastName
	case g.LastName == "":
		return g.FirstName
	default:
		return g.FirstName + " " + g.LastName
	}
}
