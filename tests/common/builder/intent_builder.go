//go:build unit || e2e

package builder

import (
	"time"

	"lodgecancel/internal/domain/intent"
	"lodgecancel/internal/usecase/queries"

	"github.com/google/uuid"
)

type IntentBuilder struct {
	ID                 uuid.UUID
	BookingID          uuid.UUID
	Reason             string
	RequestedAt        time.Time
	Status             intent.Status
	SubmittedToBackend bool
	SubmittedAt        *time.Time
	UpdatedAt          *time.Time
}

func NewIntentBuilder() *IntentBuilder {
	return &IntentBuilder{
		ID:                 uuid.New(),
		BookingID:          uuid.New(),
		Reason:             "Change of travel plans",
		RequestedAt:        time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC),
		Status:             intent.StatusPending,
		SubmittedToBackend: false,
	}
}

func (b *IntentBuilder) With(mutate func(*IntentBuilder)) *IntentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *IntentBuilder) BuildDomain() *intent.Intent {
	return intent.ReconstructIntent(
		b.ID,
		b.BookingID,
		b.Reason,
		b.RequestedAt,
		b.Status,
		b.SubmittedToBackend,
		b.SubmittedAt,
		b.UpdatedAt,
	)
}

func (b *IntentBuilder) BuildView() *queries.IntentView {
	record := b.BuildDomain()
	return &queries.IntentView{
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
