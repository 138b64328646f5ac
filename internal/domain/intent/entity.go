package intent

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyReason      = errors.New("cancellation reason is required")
	ErrMissingBookingID = errors.New("booking id is required")
	ErrInvalidStatus    = errors.New("invalid intent status")
	ErrTerminalStatus   = errors.New("intent status is terminal")
)

// Intent is the durable record of a user's cancellation request after every
// remote strategy turned out to be unusable. It references the booking by id
// only; the booking itself is owned by the backend.
type Intent struct {
	id                 uuid.UUID
	bookingID          uuid.UUID
	reason             string
	requestedAt        time.Time
	status             Status
	submittedToBackend bool
	submittedAt        *time.Time
	updatedAt          *time.Time
}

func NewIntent(bookingID uuid.UUID, reason string, requestedAt time.Time) (*Intent, error) {
	if bookingID == uuid.Nil {
		return nil, ErrMissingBookingID
	}
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return nil, ErrEmptyReason
	}

	return &Intent{
		id:                 uuid.New(),
		bookingID:          bookingID,
		reason:             trimmed,
		requestedAt:        requestedAt,
		status:             StatusPending,
		submittedToBackend: false,
	}, nil
}

func ReconstructIntent(
	id, bookingID uuid.UUID,
	reason string,
	requestedAt time.Time,
	status Status,
	submittedToBackend bool,
	submittedAt, updatedAt *time.Time,
) *Intent {
	return &Intent{
		id:                 id,
		bookingID:          bookingID,
		reason:             reason,
		requestedAt:        requestedAt,
		status:             status,
		submittedToBackend: submittedToBackend,
		submittedAt:        submittedAt,
		updatedAt:          updatedAt,
	}
}

// TransitionTo applies the one-way status lifecycle. Re-applying the current
// status is a no-op so callers can retry safely.
func (i *Intent) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if i.status == next {
		return nil
	}
	if i.status.IsTerminal() {
		return ErrTerminalStatus
	}

	i.status = next
	i.updatedAt = &now
	return nil
}

// MarkSubmitted records that an out-of-band process forwarded this intent to
// the backend. Idempotent: the first submission time wins.
func (i *Intent) MarkSubmitted(now time.Time) {
	if i.submittedToBackend {
		return
	}
	i.submittedToBackend = true
	i.submittedAt = &now
	i.updatedAt = &now
}

func (i *Intent) IsPending() bool {
	return i.status == StatusPending
}

func (i *Intent) ID() uuid.UUID            { return i.id }
func (i *Intent) BookingID() uuid.UUID     { return i.bookingID }
func (i *Intent) Reason() string           { return i.reason }
func (i *Intent) RequestedAt() time.Time   { return i.requestedAt }
func (i *Intent) Status() Status           { return i.status }
func (i *Intent) SubmittedToBackend() bool { return i.submittedToBackend }
func (i *Intent) SubmittedAt() *time.Time  { return i.submittedAt }
func (i *Intent) UpdatedAt() *time.Time    { return i.updatedAt }
