package intentstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lodgecancel/internal/domain/intent"
	"lodgecancel/internal/infra"
	"lodgecancel/internal/pkg/clock"

	"github.com/google/uuid"
)

const schema = `
CREATE TABLE IF NOT EXISTS cancellation_intents (
    id                   TEXT PRIMARY KEY,
    booking_id           TEXT    NOT NULL,
    reason               TEXT    NOT NULL,
    requested_at         TEXT    NOT NULL,
    status               TEXT    NOT NULL,
    submitted_to_backend INTEGER NOT NULL DEFAULT 0,
    submitted_at         TEXT,
    updated_at           TEXT
);
CREATE INDEX IF NOT EXISTS idx_cancellation_intents_booking
    ON cancellation_intents (booking_id, requested_at);
`

// Store persists cancellation intents in the on-device SQLite file so they
// survive process restarts. It is a plain keyed record collection; the
// one-pending-intent-per-booking rule lives in the orchestrator.
type Store struct {
	db    *sql.DB
	clock clock.Clock
}

func NewStore(db *sql.DB, clk clock.Clock) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, infra.WrapRepoErr("failed to initialize intent schema", err)
	}
	return &Store{db: db, clock: clk}, nil
}

func (s *Store) Create(ctx context.Context, record *intent.Intent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cancellation_intents
			(id, booking_id, reason, requested_at, status, submitted_to_backend, submitted_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID().String(),
		record.BookingID().String(),
		record.Reason(),
		formatTime(record.RequestedAt()),
		record.Status().String(),
		boolToInt(record.SubmittedToBackend()),
		formatTimePtr(record.SubmittedAt()),
		formatTimePtr(record.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create cancellation intent", err)
	}
	return nil
}

func (s *Store) FindAll(ctx context.Context) ([]*intent.Intent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, booking_id, reason, requested_at, status, submitted_to_backend, submitted_at, updated_at
		FROM cancellation_intents
		ORDER BY requested_at DESC, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cancellation intents", err)
	}
	defer rows.Close()

	var intents []*intent.Intent
	for rows.Next() {
		record, scanErr := scanIntent(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		intents = append(intents, record)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cancellation intents", err)
	}

	return intents, nil
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*intent.Intent, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, booking_id, reason, requested_at, status, submitted_to_backend, submitted_at, updated_at
		FROM cancellation_intents
		WHERE id = ?`, id.String())

	record, err := scanIntent(row)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, infra.WrapRepoErr("cancellation intent not found", nil, infra.KindNotFound)
		}
		return nil, err
	}
	return record, nil
}

// FindPendingByBooking returns the most recent pending intent for the
// booking. The orchestrator keeps at most one pending intent per booking, but
// the lookup stays defensive against legacy duplicates.
func (s *Store) FindPendingByBooking(ctx context.Context, bookingID uuid.UUID) (*intent.Intent, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, booking_id, reason, requested_at, status, submitted_to_backend, submitted_at, updated_at
		FROM cancellation_intents
		WHERE booking_id = ? AND status = ?
		ORDER BY requested_at DESC, id DESC
		LIMIT 1`, bookingID.String(), intent.StatusPending.String())

	record, err := scanIntent(row)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, infra.WrapRepoErr("no pending cancellation intent for booking", nil, infra.KindNotFound)
		}
		return nil, err
	}
	return record, nil
}

// FindLatestByBooking returns the most recent intent regardless of status,
// for the status screen.
func (s *Store) FindLatestByBooking(ctx context.Context, bookingID uuid.UUID) (*intent.Intent, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, booking_id, reason, requested_at, status, submitted_to_backend, submitted_at, updated_at
		FROM cancellation_intents
		WHERE booking_id = ?
		ORDER BY requested_at DESC, id DESC
		LIMIT 1`, bookingID.String())

	record, err := scanIntent(row)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, infra.WrapRepoErr("no cancellation intent for booking", nil, infra.KindNotFound)
		}
		return nil, err
	}
	return record, nil
}

// UpdateStatus applies the one-way status lifecycle. Idempotent: re-applying
// the stored status changes nothing and returns the stored record.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, next intent.Status) (*intent.Intent, error) {
	record, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if record.Status() == next {
		return record, nil
	}

	now := s.clock.Now().UTC()
	if err := record.TransitionTo(next, now); err != nil {
		if errors.Is(err, intent.ErrTerminalStatus) {
			return nil, infra.WrapRepoErr("intent status is terminal", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("invalid status transition", err, infra.KindConflict)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE cancellation_intents SET status = ?, updated_at = ? WHERE id = ?`,
		record.Status().String(), formatTimePtr(record.UpdatedAt()), id.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update intent status", err)
	}

	return record, nil
}

// MarkSubmitted records a successful out-of-band forward of the intent to
// the backend. Idempotent: the first submission time wins.
func (s *Store) MarkSubmitted(ctx context.Context, id uuid.UUID, at time.Time) (*intent.Intent, error) {
	record, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if record.SubmittedToBackend() {
		return record, nil
	}

	record.MarkSubmitted(at.UTC())

	_, err = s.db.ExecContext(ctx, `
		UPDATE cancellation_intents SET submitted_to_backend = 1, submitted_at = ?, updated_at = ? WHERE id = ?`,
		formatTimePtr(record.SubmittedAt()), formatTimePtr(record.UpdatedAt()), id.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to mark intent submitted", err)
	}

	return record, nil
}

// Clear wipes every record. Test isolation only.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cancellation_intents`); err != nil {
		return infra.WrapRepoErr("failed to clear cancellation intents", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIntent(row rowScanner) (*intent.Intent, error) {
	var (
		idStr, bookingIDStr, reason, requestedAtStr, statusStr string
		submittedInt                                            int
		submittedAtStr, updatedAtStr                            sql.NullString
	)

	err := row.Scan(&idStr, &bookingIDStr, &reason, &requestedAtStr, &statusStr, &submittedInt, &submittedAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.WrapRepoErr("cancellation intent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan cancellation intent", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt intent id", err)
	}
	bookingID, err := uuid.Parse(bookingIDStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking id", err)
	}
	requestedAt, err := parseTime(requestedAtStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt requested_at", err)
	}
	submittedAt, err := parseTimePtr(submittedAtStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt submitted_at", err)
	}
	updatedAt, err := parseTimePtr(updatedAtStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt updated_at", err)
	}

	return intent.ReconstructIntent(
		id, bookingID, reason, requestedAt,
		intent.Status(statusStr),
		submittedInt != 0,
		submittedAt, updatedAt,
	), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func parseTimePtr(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
