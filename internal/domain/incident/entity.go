package incident

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxTitleLength = 200

var (
	ErrEmptyTitle      = errors.New("incident title cannot be empty")
	ErrTitleTooLong    = errors.New("incident title exceeds maximum length")
	ErrInvalidSeverity = errors.New("invalid incident severity")
	ErrAlreadyResolved = errors.New("incident is already resolved")
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	default:
		return false
	}
}

type Incident struct {
	id          uuid.UUID
	propertyID  uuid.UUID
	title       string
	description string
	severity    Severity
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewIncident(propertyID uuid.UUID, title, description string, severity Severity) (*Incident, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if !severity.IsValid() {
		return nil, ErrInvalidSeverity
	}

	return &Incident{
		id:          uuid.New(),
		propertyID:  propertyID,
		title:       title,
		description: description,
		severity:    severity,
		status:      StatusOpen,
	}, nil
}

func (i *Incident) ID() uuid.UUID         { return i.id }
func (i *Incident) PropertyID() uuid.UUID { return i.propertyID }
func (i *Incident) Title() string         { return i.title }
func (i *Incident) Description() string   { return i.description }
func (i *Incident) Severity() Severity    { return i.severity }
func (i *Incident) Status() Status        { return i.status }
func (i *Incident) CreatedAt() time.Time  { return i.createdAt }
func (i *Incident) UpdatedAt() time.Time  { return i.updatedAt }
