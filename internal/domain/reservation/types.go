package reservation

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo encodes the status graph enforced on manual reservations:
// pending and confirmed flip freely, confirmed moves to completed, and any
// non-terminal status can be cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() || s.IsTerminal() {
		return false
	}
	if s == next {
		return true
	}
	switch next {
	case StatusCancelled:
		return true
	case StatusCompleted:
		return s == StatusConfirmed
	case StatusPending, StatusConfirmed:
		return s == StatusPending || s == StatusConfirmed
	default:
		return false
	}
}

type Source string

const (
	SourceDirect  Source = "direct"
	SourceAirbnb  Source = "airbnb"
	SourceBooking Source = "booking"
	SourceOther   Source = "other"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceDirect, SourceAirbnb, SourceBooking, SourceOther:
		return true
	default:
		return false
	}
}
