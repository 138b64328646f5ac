package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"lodgecancel/internal/infra"
	"lodgecancel/internal/pkg/clock"
	"lodgecancel/internal/pkg/config"
	"lodgecancel/internal/usecase/commands"
	"lodgecancel/internal/usecase/queries"

	"github.com/google/uuid"
)

const maxResponseBytes = 1 << 20

// HTTPGateway talks to the booking backend's cancellation endpoints and
// collapses every response into the four-way strategy classification. The
// orchestrator never sees a status code or an error body; the mapping lives
// here and only here.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	clock   clock.Clock
	logger  *slog.Logger
}

func NewHTTPGateway(cfg config.BackendConfig, client *http.Client, clk clock.Clock, logger *slog.Logger) *HTTPGateway {
	return &HTTPGateway{
		baseURL: cfg.BaseURL,
		client:  client,
		clock:   clk,
		logger:  logger,
	}
}

// RequestCancellation creates an approval-pending cancellation record on the
// backend.
func (g *HTTPGateway) RequestCancellation(ctx context.Context, bookingID uuid.UUID, reason string, actor commands.Actor) commands.StrategyResult {
	body := map[string]any{
		"reason":      reason,
		"requestedBy": actor.UserID.String(),
		"requestedAt": g.clock.Now().UTC().Format(time.RFC3339),
	}
	return g.call(ctx, http.MethodPost, fmt.Sprintf("/bookings/%s/request-cancellation", bookingID), body)
}

// DirectStatusUpdate attempts to set the booking itself to cancelled.
func (g *HTTPGateway) DirectStatusUpdate(ctx context.Context, bookingID uuid.UUID, reason string, actor commands.Actor) commands.StrategyResult {
	body := map[string]any{
		"status":       "cancelled",
		"cancelledBy":  actor.UserID.String(),
		"cancelledAt":  g.clock.Now().UTC().Format(time.RFC3339),
		"cancelReason": reason,
	}
	return g.call(ctx, http.MethodPut, fmt.Sprintf("/bookings/%s", bookingID), body)
}

// AlternativeCancel is the looser cancel endpoint some deployments expose.
func (g *HTTPGateway) AlternativeCancel(ctx context.Context, bookingID uuid.UUID, reason string, actor commands.Actor) commands.StrategyResult {
	body := map[string]any{
		"cancelledBy": actor.UserID.String(),
		"reason":      reason,
	}
	return g.call(ctx, http.MethodPost, fmt.Sprintf("/bookings/%s/cancel", bookingID), body)
}

// FetchPolicy reads the informational cancellation policy. Not part of the
// cascade, so it reports plain repository errors instead of strategy results.
func (g *HTTPGateway) FetchPolicy(ctx context.Context, bookingID uuid.UUID) (*queries.PolicyView, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+fmt.Sprintf("/bookings/%s/cancellation-policy", bookingID), nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build policy request", err, infra.KindUnavailable)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, infra.WrapRepoErr("policy request failed", err, infra.KindUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, infra.WrapRepoErr("cancellation policy not found", nil, infra.KindNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, infra.WrapRepoErr(fmt.Sprintf("policy request returned %d", resp.StatusCode), nil, infra.KindUnavailable)
	}

	var view queries.PolicyView
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&view); err != nil {
		return nil, infra.WrapRepoErr("failed to decode policy response", err, infra.KindUnavailable)
	}
	return &view, nil
}

func (g *HTTPGateway) call(ctx context.Context, method, path string, body map[string]any) commands.StrategyResult {
	encoded, err := json.Marshal(body)
	if err != nil {
		// Marshal of map[string]any with plain values cannot fail in practice;
		// classify as transient rather than invent a fifth category.
		return commands.StrategyResult{Status: commands.StrategyTransient}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return commands.StrategyResult{Status: commands.StrategyTransient}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		// Timeouts and connectivity failures keep the cascade moving.
		g.logger.Warn("cancellation call failed", "method", method, "path", path, "error", err)
		return commands.StrategyResult{Status: commands.StrategyTransient}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return commands.StrategyResult{Status: commands.StrategyTransient}
	}

	return classify(resp.StatusCode, raw)
}

// classify maps a transport response to the strategy taxonomy.
//
// A 403 is a capability mismatch (wrong role for this endpoint) unless the
// body carries an explicit denial; backends that decide on business grounds
// answer with a denial body or a 409/422.
func classify(statusCode int, raw []byte) commands.StrategyResult {
	switch {
	case statusCode >= 200 && statusCode <= 299:
		return commands.StrategyResult{Status: commands.StrategyAccepted, Payload: decodeBody(raw)}

	case statusCode == http.StatusNotFound,
		statusCode == http.StatusMethodNotAllowed,
		statusCode == http.StatusNotImplemented:
		return commands.StrategyResult{Status: commands.StrategyNotSupported}

	case statusCode == http.StatusConflict,
		statusCode == http.StatusUnprocessableEntity:
		return commands.StrategyResult{Status: commands.StrategyDenied, Reason: denialReason(raw)}

	case statusCode == http.StatusRequestTimeout,
		statusCode == http.StatusTooManyRequests,
		statusCode >= 500:
		return commands.StrategyResult{Status: commands.StrategyTransient}

	default:
		// Remaining 4xx (403 included): this deployment cannot serve the call
		// for us, unless the body flags an explicit denial.
		if explicitDenial(raw) {
			return commands.StrategyResult{Status: commands.StrategyDenied, Reason: denialReason(raw)}
		}
		return commands.StrategyResult{Status: commands.StrategyNotSupported}
	}
}

func explicitDenial(raw []byte) bool {
	body := decodeBody(raw)
	if body == nil {
		return false
	}
	denied, ok := body["denied"].(bool)
	return ok && denied
}

func decodeBody(raw []byte) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	return body
}

func denialReason(raw []byte) string {
	body := decodeBody(raw)
	for _, key := range []string{"reason", "error", "message", "detail"} {
		if v, ok := body[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
