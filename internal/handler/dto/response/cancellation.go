package response

import (
	"time"

	"lodgecancel/internal/usecase/commands"
	"lodgecancel/internal/usecase/queries"

	"github.com/google/uuid"
)

type OutcomeResponse struct {
	Result  string          `json:"result"`
	Message string          `json:"message"`
	Payload map[string]any  `json:"payload,omitempty"`
	Intent  *IntentResponse `json:"intent,omitempty"`
}

type IntentResponse struct {
	ID                 uuid.UUID  `json:"id"`
	BookingID          uuid.UUID  `json:"bookingId"`
	Reason             string     `json:"reason"`
	RequestedAt        time.Time  `json:"requestedAt"`
	Status             string     `json:"status"`
	SubmittedToBackend bool       `json:"submittedToBackend"`
	SubmittedAt        *time.Time `json:"submittedAt,omitempty"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
	StatusMessage      string     `json:"statusMessage,omitempty"`
}

type PolicyResponse struct {
	CanCancelDirectly bool    `json:"canCancelDirectly"`
	RequiresApproval  bool    `json:"requiresApproval"`
	CancellationFee   float64 `json:"cancellationFee"`
	Notice            string  `json:"notice"`
}

func FromOutcome(outcome *commands.CancellationOutcome) *OutcomeResponse {
	resp := &OutcomeResponse{
		Result:  string(outcome.Kind),
		Message: outcome.Message,
		Payload: outcome.Payload,
	}
	if outcome.Intent != nil {
		resp.Intent = fromIntentSnapshot(outcome.Intent)
	}
	return resp
}

func fromIntentSnapshot(snap *commands.IntentSnapshot) *IntentResponse {
	return &IntentResponse{
		ID:                 snap.ID,
		BookingID:          snap.BookingID,
		Reason:             snap.Reason,
		RequestedAt:        snap.RequestedAt,
		Status:             snap.Status,
		SubmittedToBackend: snap.SubmittedToBackend,
	}
}

func FromIntentView(view *queries.IntentView) *IntentResponse {
	return &IntentResponse{
		ID:                 view.ID,
		BookingID:          view.BookingID,
		Reason:             view.Reason,
		RequestedAt:        view.RequestedAt,
		Status:             view.Status,
		SubmittedToBackend: view.SubmittedToBackend,
		SubmittedAt:        view.SubmittedAt,
		UpdatedAt:          view.UpdatedAt,
		StatusMessage:      view.StatusMessage,
	}
}

func FromPolicyView(view *queries.PolicyView) *PolicyResponse {
	return &PolicyResponse{
		CanCancelDirectly: view.CanCancelDirectly,
		RequiresApproval:  view.RequiresApproval,
		CancellationFee:   view.CancellationFee,
		Notice:            view.Notice,
	}
}
