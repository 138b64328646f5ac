package queries

import (
	"context"

	"github.com/google/uuid"
)

// PolicyView mirrors the backend's informational cancellation-policy read.
// It is not part of the cancellation cascade; presentation consumes it to
// decide what to show before the user commits.
type PolicyView struct {
	CanCancelDirectly bool    `json:"can_cancel_directly"`
	RequiresApproval  bool    `json:"requires_approval"`
	CancellationFee   float64 `json:"cancellation_fee"`
	Notice            string  `json:"notice"`
}

type PolicyFetcher interface {
	FetchPolicy(ctx context.Context, bookingID uuid.UUID) (*PolicyView, error)
}

type PolicyQueries interface {
	GetForBooking(ctx context.Context, bookingID uuid.UUID) (*PolicyView, error)
}

type policyQueriesImpl struct {
	fetcher PolicyFetcher
}

func NewPolicyQueries(fetcher PolicyFetcher) PolicyQueries {
	return &policyQueriesImpl{fetcher: fetcher}
}

func (q *policyQueriesImpl) GetForBooking(ctx context.Context, bookingID uuid.UUID) (*PolicyView, error) {
	return q.fetcher.FetchPolicy(ctx, bookingID)
}
