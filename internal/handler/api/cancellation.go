package api

import (
	"errors"
	"net/http"

	reqdto "lodgecancel/internal/handler/dto/request"
	resdto "lodgecancel/internal/handler/dto/response"
	"lodgecancel/internal/handler/middleware"
	"lodgecancel/internal/infra"
	"lodgecancel/internal/usecase/commands"
	"lodgecancel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CancellationHandler struct {
	cancellationCommands commands.CancellationCommands
	intentQueries        queries.IntentQueries
	policyQueries        queries.PolicyQueries
}

func NewCancellationHandler(
	cancellationCommands commands.CancellationCommands,
	intentQueries queries.IntentQueries,
	policyQueries queries.PolicyQueries,
) *CancellationHandler {
	return &CancellationHandler{
		cancellationCommands: cancellationCommands,
		intentQueries:        intentQueries,
		policyQueries:        policyQueries,
	}
}

// @Summary Cancel booking
// @Description Resolve a cancellation request against the booking backend, queuing locally when no strategy is usable
// @Tags cancellations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Cancellation request"
// @Success 200 {object} resdto.OutcomeResponse
// @Success 202 {object} resdto.OutcomeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings/{id}/cancellation [post]
func (h *CancellationHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.CancelBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actor := commands.Actor{UserID: userID, Role: role}
	outcome, err := h.cancellationCommands.Attempt(c.Request.Context(), bookingID, req.TrimmedReason(), actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidReason):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cancellation reason is required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(statusForOutcome(outcome.Kind), resdto.FromOutcome(outcome))
}

// @Summary Get cancellation status
// @Description Latest cancellation intent recorded for a booking, with the reconciled status message
// @Tags cancellations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.IntentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancellation [get]
func (h *CancellationHandler) GetCancellation(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.intentQueries.GetForBooking(c.Request.Context(), bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No cancellation recorded for this booking",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromIntentView(view))
}

// @Summary List cancellations
// @Description All cancellation intents recorded on this device
// @Tags cancellations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.IntentResponse
// @Failure 401 {object} map[string]string
// @Router /cancellations [get]
func (h *CancellationHandler) ListCancellations(c *gin.Context) {
	views, err := h.intentQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.IntentResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromIntentView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get cancellation policy
// @Description Informational policy read passed through from the booking backend
// @Tags cancellations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.PolicyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings/{id}/cancellation-policy [get]
func (h *CancellationHandler) GetCancellationPolicy(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.policyQueries.GetForBooking(c.Request.Context(), bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cancellation policy not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Booking service unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPolicyView(view))
}

func statusForOutcome(kind commands.OutcomeKind) int {
	switch kind {
	case commands.OutcomeLocallyQueued:
		// Recorded but not delivered to the backend.
		return http.StatusAccepted
	case commands.OutcomeFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}
