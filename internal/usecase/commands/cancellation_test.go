//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lodgecancel/internal/domain/intent"
	"lodgecancel/internal/infra"
	"lodgecancel/internal/pkg/clock"
	"lodgecancel/internal/pkg/errs"
	"lodgecancel/internal/usecase/commands"
	"lodgecancel/tests/common/builder"
	commandsmock "lodgecancel/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC)

type orchestratorFixture struct {
	commands commands.CancellationCommands
	gateway  *commandsmock.MockCancellationGateway
	store    *commandsmock.MockIntentWriteStore
	clock    *clock.MockClock
}

func newFixture(t *testing.T) *orchestratorFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := commandsmock.NewMockCancellationGateway(ctrl)
	store := commandsmock.NewMockIntentWriteStore(ctrl)
	mockClock := clock.NewMockClock(fixedNow)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &orchestratorFixture{
		commands: commands.NewCancellationCommands(gateway, store, mockClock, logger),
		gateway:  gateway,
		store:    store,
		clock:    mockClock,
	}
}

func noPendingIntent() error {
	return infra.WrapRepoErr("no pending cancellation intent for booking", nil, infra.KindNotFound)
}

var actor = commands.Actor{UserID: uuid.New(), Role: "guest"}

// =============================================================================
// Cascade exhaustion
// =============================================================================

func TestAttempt_AllStrategiesNotSupported_QueuesLocally(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bookingID := uuid.New()

	f.store.EXPECT().FindPendingByBooking(ctx, bookingID).Return(nil, noPendingIntent())

	gomock.InOrder(
		f.gateway.EXPECT().RequestCancellation(ctx, bookingID, "no longer needed", actor).
			Return(commands.StrategyResult{Status: commands.StrategyNotSupported}),
		f.gateway.EXPECT().DirectStatusUpdate(ctx, bookingID, "no longer needed", actor).
			Return(commands.StrategyResult{Status: commands.StrategyNotSupported}),
		f.gateway.EXPECT().AlternativeCancel(ctx, bookingID, "no longer needed", actor).
			Return(commands.StrategyResult{Status: commands.StrategyNotSupported}),
	)

	var persisted *intent.Intent
	f.store.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *intent.Intent) error {
			persisted = record
			return nil
		}).Times(1)

	outcome, err := f.commands.Attempt(ctx, bookingID, "no longer needed", actor)
	require.NoError(t, err)
	require.NotNil(t, outcome)

	assert.Equal(t, commands.OutcomeLocallyQueued, outcome.Kind)
	require.NotNil(t, outcome.Intent)

	require.NotNil(t, persisted)
	assert.Equal(t, persisted.ID(), outcome.Intent.ID)
	assert.Equal(t, bookingID, persisted.BookingID())
	assert.Equal(t, intent.StatusPending, persisted.Status())
	assert.False(t, persisted.SubmittedToBackend())
	assert.True(t, persisted.RequestedAt().Equal(fixedNow))
}

func TestAttempt_AllStrategiesTransient_QueuesLocallyWithSupportGuidance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bookingID := uuid.New()

	f.store.EXPECT().FindPendingByBooking(ctx, bookingID).Return(nil, noPendingIntent())

	transient := commands.StrategyResult{Status: commands.StrategyTransient}
	gomock.InOrder(
		f.gateway.EXPECT().RequestCancellation(ctx, bookingID, "flight cancelled", actor).Return(transient),
		f.gateway.EXPECT().DirectStatusUpdate(ctx, bookingID, "flight cancelled", actor).Return(transient),
		f.gateway.EXPECT().AlternativeCancel(ctx, bookingID, "flight cancelled", actor).Return(transient),
	)
	f.store.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	outcome, err := f.commands.Attempt(ctx, bookingID, "flight cancelled", actor)
	require.NoError(t, err)

	assert.Equal(t, commands.OutcomeLocallyQueued, outcome.Kind)
	assert.Contains(t, outcome.Message, "support")
}

// =============================================================================
// Short-circuit behavior
// =============================================================================

func TestAttempt_FirstStrategyAccepted_ShortCircuits(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bookingID := uuid.New()

	f.store.EXPECT().FindPendingByBooking(ctx, bookingID).Return(nil, noPendingIntent())

	payload := map[string]any{"cancellationId": "abc-123"}
	f.gateway.EXPECT().RequestCancellation(ctx, bookingID, "double booked", actor).
		Return(commands.StrategyResult{Status: commands.StrategyAccepted, Payload: payload})
	// No expectations on the remaining strategies or the store: any call fails the test.

	outcome, err := f.commands.Attempt(ctx, bookingID, "double booked", actor)
	require.NoError(t, err)

	assert.Equal(t, commands.OutcomeRemoteAccepted, outcome.Kind)
	assert.Equal(t, payload, outcome.Payload)
	assert.Nil(t, outcome.Intent)
}

func TestAttempt_FirstStrategyDenied_StopsImmediately(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bookingID := uuid.New()

	f.store.EXPECT().FindPendingByBooking(ctx, bookingID).Return(nil, noPendingIntent())

	f.gateway.EXPECT().RequestCancellation(ctx, bookingID, "changed my mind", actor).
		Return(commands.StrategyResult{Status: commands.StrategyDenied, Reason: "past free-cancellation window"})

	outcome, err := f.commands.Attempt(ctx, bookingID, "changed my mind", actor)
	require.NoError(t, err)

	assert.Equal(t, commands.OutcomeRejected, outcome.Kind)
	assert.Contains(t, outcome.Message, "past free-cancellation window")
	assert.Nil(t, outcome.Intent)
}

func TestAttempt_DeniedMidCascade_SkipsRemainingStrategies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bookingID := uuid.New()

	f.store.EXPECT().FindPendingByBooking(ctx, bookingID).Return(nil, noPendingIntent())

	gomock.InOrder(
		f.gateway.EXPECT().RequestCancellation(ctx, bookingID, "reason", actor).
			Return(commands.StrategyResult{Status: commands.StrategyNotSupported}),
		f.gateway.EXPECT().DirectStatusUpdate(ctx, bookingID, "reason", actor).
			Return(commands.StrategyResult{Status: commands.StrategyDenied, Reason: "only the landlord may cancel this booking"}),
	)
	// AlternativeCancel must never run.

	outcome, err := f.commands.Attempt(ctx, bookingID, "reason", actor)
	require.NoError(t, err)

	assert.Equal(t, commands.OutcomeRejected, outcome.Kind)
	assert.Contains(t, outcome.Message, "landlord")
}

// =============================================================================
// Deduplication
// =============================================================================

func TestAttempt_ExistingPendingIntent_ReturnsItWithoutRemoteCalls(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	existing := builder.NewIntentBuilder().BuildDomain()
	bookingID := existing.BookingID()

	f.store.EXPECT().FindPendingByBooking(ctx, bookingID).Return(existing, nil)
	// No gateway expectations and no Create: the pending intent answers the call.

	outcome, err := f.commands.Attempt(ctx, bookingID, "retry tap", actor)
	require.NoError(t, err)

	assert.Equal(t, commands.OutcomeLocallyQueued, outcome.Kind)
	require.NotNil(t, outcome.Intent)
	assert.Equal(t, existing.ID(), outcome.Intent.ID)
}

// =============================================================================
// Failure handling
// =============================================================================

func TestAttempt_StoreCreateFails_ReportsFailedNotQueued(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bookingID := uuid.New()

	f.store.EXPECT().FindPendingByBooking(ctx, bookingID).Return(nil, noPendingIntent())

	notSupported := commands.StrategyResult{Status: commands.StrategyNotSupported}
	f.gateway.EXPECT().RequestCancellation(ctx, bookingID, "reason", actor).Return(notSupported)
	f.gateway.EXPECT().DirectStatusUpdate(ctx, bookingID, "reason", actor).Return(notSupported)
	f.gateway.EXPECT().AlternativeCancel(ctx, bookingID, "reason", actor).Return(notSupported)

	f.store.EXPECT().Create(ctx, gomock.Any()).
		Return(infra.WrapRepoErr("disk full", errs.New("disk full")))

	outcome, err := f.commands.Attempt(ctx, bookingID, "reason", actor)
	require.NoError(t, err)

	assert.Equal(t, commands.OutcomeFailed, outcome.Kind)
	assert.Contains(t, outcome.Message, "support")
	assert.Nil(t, outcome.Intent)
}

func TestAttempt_PendingLookupFails_ReturnsError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bookingID := uuid.New()

	f.store.EXPECT().FindPendingByBooking(ctx, bookingID).
		Return(nil, infra.WrapRepoErr("db locked", errs.New("db locked")))

	outcome, err := f.commands.Attempt(ctx, bookingID, "reason", actor)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, commands.ErrIntentLookupFailed)
}

func TestAttempt_InputValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing booking id", func(t *testing.T) {
		f := newFixture(t)
		outcome, err := f.commands.Attempt(ctx, uuid.Nil, "reason", actor)
		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, commands.ErrMissingBookingID)
	})

	t.Run("blank reason", func(t *testing.T) {
		f := newFixture(t)
		bookingID := uuid.New()
		f.store.EXPECT().FindPendingByBooking(ctx, bookingID).Return(nil, noPendingIntent())

		outcome, err := f.commands.Attempt(ctx, bookingID, "   ", actor)
		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, commands.ErrInvalidReason)
	})
}
