package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler handles Pub/Sub push messages carrying storefront domain events
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	orderEventUC   usecase.OrderEventUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	OrderEventUC usecase.OrderEventUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		orderEventUC:   params.OrderEventUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Retryable failures answer 503 so Pub/Sub redelivers; every other outcome is acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse domain event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing domain event",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.orderEventUC.HandleEvent(ctx, &event); err != nil {
		retryable := h.orderEventUC.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to process domain event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Domain event processed", slog.String("event_id", event.ID))

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DomainEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
