package commands

import (
	"context"
	"time"

	"lodgecancel/internal/domain/intent"

	"github.com/google/uuid"
)

// StrategyStatus is the four-way classification every remote strategy call
// collapses into. The gateway owns the mapping from transport status codes and
// error bodies; nothing above it ever inspects raw responses.
type StrategyStatus string

const (
	// StrategyAccepted: the backend accepted the cancellation.
	StrategyAccepted StrategyStatus = "accepted"
	// StrategyNotSupported: the operation does not exist on this deployment or
	// the caller's role categorically cannot use it.
	StrategyNotSupported StrategyStatus = "not_supported"
	// StrategyDenied: the backend understood the request and refused it on
	// business grounds.
	StrategyDenied StrategyStatus = "denied"
	// StrategyTransient: timeout, connectivity failure or server error.
	StrategyTransient StrategyStatus = "transient"
)

type StrategyResult struct {
	Status  StrategyStatus
	Payload map[string]any // decoded 2xx body, accepted only
	Reason  string         // backend explanation, denied only
}

// Actor identifies who is asking for the cancellation; it feeds the
// requestedBy / cancelledBy fields of the backend calls.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

// CancellationGateway exposes one method per backend cancellation strategy.
// Implementations never return untyped errors; every outcome is classified.
type CancellationGateway interface {
	RequestCancellation(ctx context.Context, bookingID uuid.UUID, reason string, actor Actor) StrategyResult
	DirectStatusUpdate(ctx context.Context, bookingID uuid.UUID, reason string, actor Actor) StrategyResult
	AlternativeCancel(ctx context.Context, bookingID uuid.UUID, reason string, actor Actor) StrategyResult
}

// IntentWriteStore is the write-side slice of the intent store the
// orchestrator needs.
type IntentWriteStore interface {
	Create(ctx context.Context, record *intent.Intent) error
	FindPendingByBooking(ctx context.Context, bookingID uuid.UUID) (*intent.Intent, error)
}

// IntentSnapshot is the write-side view of a stored intent returned inside
// outcomes (CQRS separation from the read-side query types).
type IntentSnapshot struct {
	ID                 uuid.UUID
	BookingID          uuid.UUID
	Reason             string
	RequestedAt        time.Time
	Status             string
	SubmittedToBackend bool
}

func snapshotOf(record *intent.Intent) *IntentSnapshot {
	return &IntentSnapshot{
		ID:                 record.ID(),
		BookingID:          record.BookingID(),
		Reason:             record.Reason(),
		RequestedAt:        record.RequestedAt(),
		Status:             record.Status().String(),
		SubmittedToBackend: record.SubmittedToBackend(),
	}
}
