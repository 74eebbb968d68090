package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int, adminEmails ...string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Admin:    &config.AdminConfig{Emails: adminEmails},
		Catalog:  &config.CatalogConfig{DefaultPageSize: 10, MaxPageSize: 50},
		Checkout: &config.CheckoutConfig{Currency: "INR", OrderNumberPrefix: "TS-", MaxAttempts: 3},
	}
}

type testHasher struct{}

func (h *testHasher) Hash(password string) (string, error) {
	return "hashed-" + password, nil
}

func (h *testHasher) Check(password, hash string) bool {
	return hash == "hashed-"+password
}

func (h *testHasher) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password too short")
	}

	return nil
}

// testTokenService issues sequential opaque tokens and remembers who they belong to.
type testTokenService struct {
	seq    atomic.Int64
	mu     sync.Mutex
	owners map[string]uuid.UUID
}

func newTestTokenService() *testTokenService {
	return &testTokenService{owners: map[string]uuid.UUID{}}
}

func (s *testTokenService) GenerateTokens(userID uuid.UUID, _ []string) (string, string, error) {
	n := s.seq.Add(1)
	access, refresh := fmt.Sprintf("access-%d", n), fmt.Sprintf("refresh-%d", n)

	s.mu.Lock()
	s.owners[access] = userID
	s.owners[refresh] = userID
	s.mu.Unlock()

	return access, refresh, nil
}

func (s *testTokenService) ValidateToken(token string) (*service.Claims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.owners[token]
	if !ok {
		return nil, errors.New("token is invalid")
	}
	tokenType := service.TokenTypeAccess
	if strings.HasPrefix(token, "refresh-") {
		tokenType = service.TokenTypeRefresh
	}

	return &service.Claims{UserID: userID, Type: tokenType}, nil
}

func (s *testTokenService) HashToken(token string) string {
	return "hash-" + token
}

func (s *testTokenService) GetRefreshTokenDuration() time.Duration {
	return time.Hour
}

type testOAuthService struct {
	user *service.OAuthUser
	err  error
}

func (s *testOAuthService) VerifyIDToken(_ context.Context, _ string) (*service.OAuthUser, error) {
	return s.user, s.err
}

func (s *testOAuthService) GetProvider() string {
	return entity.ProviderTypeGoogle
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event *service.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}

	return out
}

// testGateway signs confirmations as "sig:<reference>|<paymentID>".
type testGateway struct {
	created atomic.Int64
	err     error
}

func (g *testGateway) CreatePayment(_ context.Context, req service.PaymentRequest) (*service.PaymentSession, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.created.Add(1)

	return &service.PaymentSession{
		Provider:    constants.PaymentProviderManual,
		Reference:   "ref_" + req.Receipt,
		RedirectURL: "https://pay.example.com/" + req.Receipt,
	}, nil
}

func (g *testGateway) VerifySignature(confirmation service.PaymentConfirmation) bool {
	return confirmation.Signature == "sig:"+confirmation.Reference+"|"+confirmation.PaymentID
}

func (g *testGateway) Provider() string {
	return constants.PaymentProviderManual
}
