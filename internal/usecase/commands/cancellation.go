package commands

import (
	"context"
	"log/slog"

	"lodgecancel/internal/domain/intent"
	"lodgecancel/internal/infra"
	"lodgecancel/internal/pkg/clock"
	"lodgecancel/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingBookingID   = errs.New("booking id is required")
	ErrInvalidReason      = errs.New("cancellation reason is required")
	ErrIntentLookupFailed = errs.New("pending intent lookup failed")
)

type OutcomeKind string

const (
	// OutcomeRemoteAccepted: a backend strategy accepted the cancellation.
	OutcomeRemoteAccepted OutcomeKind = "remote_accepted"
	// OutcomeRejected: the backend explicitly refused on business grounds.
	OutcomeRejected OutcomeKind = "rejected"
	// OutcomeLocallyQueued: no strategy was usable; the intent is persisted on
	// the device.
	OutcomeLocallyQueued OutcomeKind = "locally_queued"
	// OutcomeFailed: local persistence itself failed. Never reported as
	// queued, since that would claim a guarantee that does not hold.
	OutcomeFailed OutcomeKind = "failed"
)

type CancellationOutcome struct {
	Kind    OutcomeKind
	Message string
	Payload map[string]any  // remote_accepted only
	Intent  *IntentSnapshot // locally_queued only
}

type CancellationCommands interface {
	Attempt(ctx context.Context, bookingID uuid.UUID, reason string, actor Actor) (*CancellationOutcome, error)
}

type strategy struct {
	name string
	call func(ctx context.Context, bookingID uuid.UUID, reason string, actor Actor) StrategyResult
}

type cancellationUseCaseImpl struct {
	gateway CancellationGateway
	store   IntentWriteStore
	clock   clock.Clock
	logger  *slog.Logger
}

func NewCancellationCommands(
	gateway CancellationGateway,
	store IntentWriteStore,
	clk clock.Clock,
	logger *slog.Logger,
) CancellationCommands {
	return &cancellationUseCaseImpl{
		gateway: gateway,
		store:   store,
		clock:   clk,
		logger:  logger,
	}
}

// Attempt resolves a cancellation request against a backend whose support for
// cancellation varies per deployment. Strategies run strictly sequentially so
// at most one mutating call per booking is in flight at any instant; two
// racing strategies could otherwise duplicate backend side effects.
func (u *cancellationUseCaseImpl) Attempt(
	ctx context.Context,
	bookingID uuid.UUID,
	reason string,
	actor Actor,
) (*CancellationOutcome, error) {
	if bookingID == uuid.Nil {
		return nil, ErrMissingBookingID
	}

	// A pending intent already on the device answers the request: no duplicate
	// record, no repeated remote calls.
	existing, err := u.store.FindPendingByBooking(ctx, bookingID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrIntentLookupFailed)
	}
	if existing != nil {
		return &CancellationOutcome{
			Kind:    OutcomeLocallyQueued,
			Message: intent.StatusMessage(existing),
			Intent:  snapshotOf(existing),
		}, nil
	}

	newIntent, err := intent.NewIntent(bookingID, reason, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReason)
	}

	strategies := []strategy{
		{name: "request_cancellation", call: u.gateway.RequestCancellation},
		{name: "direct_status_update", call: u.gateway.DirectStatusUpdate},
		{name: "alternative_cancel", call: u.gateway.AlternativeCancel},
	}

	for _, s := range strategies {
		result := s.call(ctx, bookingID, newIntent.Reason(), actor)

		switch result.Status {
		case StrategyAccepted:
			u.logger.Info("cancellation accepted by backend",
				"booking_id", bookingID, "strategy", s.name)
			return &CancellationOutcome{
				Kind:    OutcomeRemoteAccepted,
				Message: "Your cancellation request was accepted.",
				Payload: result.Payload,
			}, nil

		case StrategyDenied:
			// A definitive business denial must not be masked by trying
			// further strategies or queuing locally.
			u.logger.Info("cancellation denied by backend",
				"booking_id", bookingID, "strategy", s.name, "reason", result.Reason)
			return &CancellationOutcome{
				Kind:    OutcomeRejected,
				Message: deniedMessage(result.Reason),
			}, nil

		default:
			u.logger.Debug("cancellation strategy unusable, falling through",
				"booking_id", bookingID, "strategy", s.name, "status", string(result.Status))
		}
	}

	if err := u.store.Create(ctx, newIntent); err != nil {
		u.logger.Error("failed to persist cancellation intent",
			"booking_id", bookingID, "error", err)
		return &CancellationOutcome{
			Kind: OutcomeFailed,
			Message: "Your cancellation request could not be saved on this device. " +
				"Please contact the landlord or support directly.",
		}, nil
	}

	return &CancellationOutcome{
		Kind:    OutcomeLocallyQueued,
		Message: intent.StatusMessage(newIntent),
		Intent:  snapshotOf(newIntent),
	}, nil
}

func deniedMessage(reason string) string {
	msg := "Your cancellation request was refused by the booking service."
	if reason != "" {
		msg += " Reason: " + reason + "."
	}
	return msg + " Please contact support if you believe this is a mistake."
}
