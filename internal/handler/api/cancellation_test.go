//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"lodgecancel/internal/handler/api"
	"lodgecancel/internal/handler/middleware"
	"lodgecancel/internal/infra"
	"lodgecancel/internal/pkg/jwt"
	"lodgecancel/internal/usecase"
	"lodgecancel/internal/usecase/commands"
	"lodgecancel/internal/usecase/queries"
	"lodgecancel/tests/common/builder"
	testhttp "lodgecancel/tests/common/httptest"
	commandsmock "lodgecancel/tests/mock/commands"
	queriesmock "lodgecancel/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CancellationHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCommands *commandsmock.MockCancellationCommands
	mockIntents  *queriesmock.MockIntentQueries
	mockPolicies *queriesmock.MockPolicyQueries
	router       *gin.Engine
	userID       uuid.UUID
	authToken    string
}

func TestCancellationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CancellationHandlerTestSuite))
}

func (s *CancellationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCancellationCommands(s.ctrl)
	s.mockIntents = queriesmock.NewMockIntentQueries(s.ctrl)
	s.mockPolicies = queriesmock.NewMockPolicyQueries(s.ctrl)

	jwtService := jwt.NewService("test-secret-key", time.Hour)
	s.userID = uuid.New()
	token, err := jwtService.GenerateToken(s.userID, "guest")
	s.Require().NoError(err)
	s.authToken = token

	handler := api.NewCancellationHandler(s.mockCommands, s.mockIntents, s.mockPolicies)
	authMiddleware := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))

	s.router = gin.New()
	apiGroup := s.router.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	apiGroup.POST("/bookings/:id/cancellation", handler.CancelBooking)
	apiGroup.GET("/bookings/:id/cancellation", handler.GetCancellation)
	apiGroup.GET("/bookings/:id/cancellation-policy", handler.GetCancellationPolicy)
	apiGroup.GET("/cancellations", handler.ListCancellations)
}

func (s *CancellationHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CancellationHandlerTestSuite) cancelPath(bookingID uuid.UUID) string {
	return "/api/bookings/" + bookingID.String() + "/cancellation"
}

// =============================================================================
// POST /api/bookings/:id/cancellation
// =============================================================================

func (s *CancellationHandlerTestSuite) TestCancelBooking_RemoteAccepted() {
	bookingID := uuid.New()

	var gotActor commands.Actor
	s.mockCommands.EXPECT().
		Attempt(gomock.Any(), bookingID, "plans changed", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, actor commands.Actor) (*commands.CancellationOutcome, error) {
			gotActor = actor
			return &commands.CancellationOutcome{
				Kind:    commands.OutcomeRemoteAccepted,
				Message: "Your cancellation request was accepted.",
				Payload: map[string]any{"cancellationId": "abc"},
			}, nil
		})

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, s.cancelPath(bookingID),
		map[string]string{"reason": "plans changed"}, s.authToken)

	var resp struct {
		Result  string         `json:"result"`
		Message string         `json:"message"`
		Payload map[string]any `json:"payload"`
	}
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("remote_accepted", resp.Result)
	s.Equal("abc", resp.Payload["cancellationId"])

	s.Equal(s.userID, gotActor.UserID)
	s.Equal("guest", gotActor.Role)
}

func (s *CancellationHandlerTestSuite) TestCancelBooking_Rejected() {
	bookingID := uuid.New()

	s.mockCommands.EXPECT().
		Attempt(gomock.Any(), bookingID, "too late", gomock.Any()).
		Return(&commands.CancellationOutcome{
			Kind:    commands.OutcomeRejected,
			Message: "Your cancellation request was refused by the booking service. Reason: past free-cancellation window.",
		}, nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, s.cancelPath(bookingID),
		map[string]string{"reason": "too late"}, s.authToken)

	var resp struct {
		Result  string `json:"result"`
		Message string `json:"message"`
	}
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("rejected", resp.Result)
	s.Contains(resp.Message, "past free-cancellation window")
}

func (s *CancellationHandlerTestSuite) TestCancelBooking_LocallyQueuedReturns202() {
	record := builder.NewIntentBuilder().BuildDomain()
	bookingID := record.BookingID()

	s.mockCommands.EXPECT().
		Attempt(gomock.Any(), bookingID, "no connectivity", gomock.Any()).
		Return(&commands.CancellationOutcome{
			Kind:    commands.OutcomeLocallyQueued,
			Message: "Your cancellation request has been saved on this device.",
			Intent: &commands.IntentSnapshot{
				ID:          record.ID(),
				BookingID:   bookingID,
				Reason:      record.Reason(),
				RequestedAt: record.RequestedAt(),
				Status:      record.Status().String(),
			},
		}, nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, s.cancelPath(bookingID),
		map[string]string{"reason": "no connectivity"}, s.authToken)

	var resp struct {
		Result string `json:"result"`
		Intent *struct {
			ID     uuid.UUID `json:"id"`
			Status string    `json:"status"`
		} `json:"intent"`
	}
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusAccepted, &resp)
	s.Equal("locally_queued", resp.Result)
	s.Require().NotNil(resp.Intent)
	s.Equal(record.ID(), resp.Intent.ID)
	s.Equal("pending", resp.Intent.Status)
}

func (s *CancellationHandlerTestSuite) TestCancelBooking_PersistenceFailureReturns500() {
	bookingID := uuid.New()

	s.mockCommands.EXPECT().
		Attempt(gomock.Any(), bookingID, "reason", gomock.Any()).
		Return(&commands.CancellationOutcome{
			Kind:    commands.OutcomeFailed,
			Message: "Your cancellation request could not be saved on this device.",
		}, nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, s.cancelPath(bookingID),
		map[string]string{"reason": "reason"}, s.authToken)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Contains(w.Body.String(), `"result":"failed"`)
}

func (s *CancellationHandlerTestSuite) TestCancelBooking_InvalidReason() {
	bookingID := uuid.New()

	s.mockCommands.EXPECT().
		Attempt(gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
		Return(nil, commands.ErrInvalidReason)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, s.cancelPath(bookingID),
		map[string]string{"reason": "   "}, s.authToken)

	testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Cancellation reason is required")
}

func (s *CancellationHandlerTestSuite) TestCancelBooking_ValidationAndAuth() {
	s.Run("malformed booking id", func() {
		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/not-a-uuid/cancellation",
			map[string]string{"reason": "reason"}, s.authToken)
		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("missing reason field", func() {
		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, s.cancelPath(uuid.New()),
			map[string]string{}, s.authToken)
		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("missing token", func() {
		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, s.cancelPath(uuid.New()),
			map[string]string{"reason": "reason"}, "")
		testhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("garbage token", func() {
		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, s.cancelPath(uuid.New()),
			map[string]string{"reason": "reason"}, "not-a-jwt")
		testhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// GET /api/bookings/:id/cancellation
// =============================================================================

func (s *CancellationHandlerTestSuite) TestGetCancellation_Found() {
	view := builder.NewIntentBuilder().BuildView()

	s.mockIntents.EXPECT().
		GetForBooking(gomock.Any(), view.BookingID).
		Return(view, nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, s.cancelPath(view.BookingID), nil, s.authToken)

	var resp struct {
		ID            uuid.UUID `json:"id"`
		Status        string    `json:"status"`
		StatusMessage string    `json:"statusMessage"`
	}
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(view.ID, resp.ID)
	s.Equal("pending", resp.Status)
	s.Contains(resp.StatusMessage, "saved on this device")
}

func (s *CancellationHandlerTestSuite) TestGetCancellation_NotFound() {
	bookingID := uuid.New()

	s.mockIntents.EXPECT().
		GetForBooking(gomock.Any(), bookingID).
		Return(nil, infra.WrapRepoErr("no cancellation intent for booking", nil, infra.KindNotFound))

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, s.cancelPath(bookingID), nil, s.authToken)
	testhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "No cancellation recorded")
}

// =============================================================================
// GET /api/cancellations
// =============================================================================

func (s *CancellationHandlerTestSuite) TestListCancellations() {
	first := builder.NewIntentBuilder().BuildView()
	second := builder.NewIntentBuilder().BuildView()

	s.mockIntents.EXPECT().
		ListAll(gomock.Any()).
		Return([]*queries.IntentView{first, second}, nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cancellations", nil, s.authToken)

	var resp []struct {
		ID uuid.UUID `json:"id"`
	}
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Require().Len(resp, 2)
	s.Equal(first.ID, resp[0].ID)
	s.Equal(second.ID, resp[1].ID)
}

// =============================================================================
// GET /api/bookings/:id/cancellation-policy
// =============================================================================

func (s *CancellationHandlerTestSuite) TestGetCancellationPolicy() {
	bookingID := uuid.New()

	s.Run("成功", func() {
		s.mockPolicies.EXPECT().
			GetForBooking(gomock.Any(), bookingID).
			Return(&queries.PolicyView{
				CanCancelDirectly: false,
				RequiresApproval:  true,
				CancellationFee:   25.5,
				Notice:            "Cancellations within 48h incur a fee.",
			}, nil)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings/"+bookingID.String()+"/cancellation-policy", nil, s.authToken)

		var resp struct {
			CanCancelDirectly bool    `json:"canCancelDirectly"`
			RequiresApproval  bool    `json:"requiresApproval"`
			CancellationFee   float64 `json:"cancellationFee"`
		}
		testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.CanCancelDirectly)
		s.True(resp.RequiresApproval)
		s.Equal(25.5, resp.CancellationFee)
	})

	s.Run("ポリシーが存在しない", func() {
		s.mockPolicies.EXPECT().
			GetForBooking(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("cancellation policy not found", nil, infra.KindNotFound))

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings/"+bookingID.String()+"/cancellation-policy", nil, s.authToken)
		testhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Cancellation policy not found")
	})

	s.Run("バックエンド接続不可", func() {
		s.mockPolicies.EXPECT().
			GetForBooking(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("policy request failed", nil, infra.KindUnavailable))

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings/"+bookingID.String()+"/cancellation-policy", nil, s.authToken)
		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "Booking service unavailable")
	})
}
