package request

import "strings"

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

func (r CancelBookingRequest) TrimmedReason() string {
	return strings.TrimSpace(r.Reason)
}
