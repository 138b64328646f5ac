package queries

import (
	"context"
	"time"

	"lodgecancel/internal/domain/intent"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type IntentView struct {
	ID                 uuid.UUID  `json:"id"`
	BookingID          uuid.UUID  `json:"booking_id"`
	Reason             string     `json:"reason"`
	RequestedAt        time.Time  `json:"requested_at"`
	Status             string     `json:"status"`
	SubmittedToBackend bool       `json:"submitted_to_backend"`
	SubmittedAt        *time.Time `json:"submitted_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
	StatusMessage      string     `json:"status_message"`
}

type IntentQueries interface {
	GetForBooking(ctx context.Context, bookingID uuid.UUID) (*IntentView, error)
	ListAll(ctx context.Context) ([]*IntentView, error)
}

type IntentReadStore interface {
	FindLatestByBooking(ctx context.Context, bookingID uuid.UUID) (*intent.Intent, error)
	FindAll(ctx context.Context) ([]*intent.Intent, error)
}

type intentQueriesImpl struct {
	store IntentReadStore
}

func NewIntentQueries(store IntentReadStore) IntentQueries {
	return &intentQueriesImpl{store: store}
}

func (q *intentQueriesImpl) GetForBooking(ctx context.Context, bookingID uuid.UUID) (*IntentView, error) {
	record, err := q.store.FindLatestByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return toIntentView(record), nil
}

func (q *intentQueriesImpl) ListAll(ctx context.Context) ([]*IntentView, error) {
	records, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*IntentView, len(records))
	for i, record := range records {
		views[i] = toIntentView(record)
	}
	return views, nil
}

func toIntentView(record *intent.Intent) *IntentView {
	return &IntentView{
		ID:                 record.ID(),
		BookingID:          record.BookingID(),
		Reason:             record.Reason(),
		RequestedAt:        record.RequestedAt(),
		Status:             record.Status().String(),
		SubmittedToBackend: record.SubmittedToBackend(),
		SubmittedAt:        record.SubmittedAt(),
		UpdatedAt:          record.UpdatedAt(),
		StatusMessage:      intent.StatusMessage(record),
	}
}
