package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// pendingCode tracks one issued OTP. Codes live in memory only: they must not
// survive a process restart, and persisting them to the snapshot store would
// let them.
type pendingCode struct {
	codeHash   []byte
	attempts   int
	lastSentAt time.Time
	expiresAt  time.Time
}

// Service runs the simulated one-time-passcode login. A successful
// verification logs the user into the state manager and issues a session
// token.
type Service struct {
	manager StateManager
	jwt     tokenIssuer
	sender  Sender

	codeTTL        time.Duration
	resendCooldown time.Duration
	maxAttempts    int
	demoCode       string

	mu      sync.Mutex
	pending map[string]*pendingCode
}

func NewService(
	manager StateManager,
	jwt tokenIssuer,
	sender Sender,
	codeTTL time.Duration,
	resendCooldown time.Duration,
	maxAttempts int,
	demoCode string,
) *Service {
	return &Service{
		manager:        manager,
		jwt:            jwt,
		sender:         sender,
		codeTTL:        codeTTL,
		resendCooldown: resendCooldown,
		maxAttempts:    maxAttempts,
		demoCode:       demoCode,
		pending:        make(map[string]*pendingCode),
	}
}

// RequestOTP issues a code for the identifier. Re-requesting inside the
// resend cooldown is rejected; re-requesting after it replaces the old code.
func (s *Service) RequestOTP(ctx context.Context, identifier string) (*OTPRequestResult, error) {
	id := normalizeIdentifier(identifier)
	now := time.Now()

	s.mu.Lock()
	if current, ok := s.pending[id]; ok {
		if current.lastSentAt.Add(s.resendCooldown).After(now) {
			s.mu.Unlock()
			return nil, ErrRateLimitExceeded
		}
	}
	s.mu.Unlock()

	code := s.demoCode
	if code == "" {
		generated, err := generateCode()
		if err != nil {
			return nil, err
		}
		code = generated
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.pending[id] = &pendingCode{
		codeHash:   hash,
		lastSentAt: now,
		expiresAt:  now.Add(s.codeTTL),
	}
	s.mu.Unlock()

	if sendErr := s.sender.SendOTP(ctx, id, code); sendErr != nil {
		log.Printf("auth: sending otp failed: %v", sendErr)
	}

	return &OTPRequestResult{Status: "sent"}, nil
}

// VerifyOTP checks the code and, on success, starts the session.
func (s *Service) VerifyOTP(_ context.Context, identifier, code string) (*LoginResult, error) {
	id := normalizeIdentifier(identifier)
	now := time.Now()

	s.mu.Lock()
	current, ok := s.pending[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoPendingOTP
	}
	if now.After(current.expiresAt) {
		delete(s.pending, id)
		s.mu.Unlock()
		return nil, ErrOTPExpired
	}
	if current.attempts >= s.maxAttempts {
		delete(s.pending, id)
		s.mu.Unlock()
		return nil, ErrTooManyAttempts
	}
	if err := bcrypt.CompareHashAndPassword(current.codeHash, []byte(code)); err != nil {
		current.attempts++
		s.mu.Unlock()
		return nil, ErrInvalidOTP
	}
	delete(s.pending, id)
	s.mu.Unlock()

	state := s.manager.Login(id)

	token, err := s.jwt.GenerateToken(id, state.CRN, uuid.NewString())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		CRN:   state.CRN,
		User:  state.User,
	}, nil
}

// Logout ends the session and wipes the stored state.
func (s *Service) Logout(_ context.Context) {
	s.manager.Logout()
}

// CurrentSession returns the logged-in user and display code.
func (s *Service) CurrentSession(_ context.Context) (*LoginResult, bool) {
	state := s.manager.State()
	if !state.IsAuthenticated || state.User == nil {
		return nil, false
	}
	return &LoginResult{CRN: state.CRN, User: state.User}, true
}

func normalizeIdentifier(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// ConsoleSender logs the code instead of delivering it. Dev only.
type ConsoleSender struct {
	enabled bool
}

func NewConsoleSender(enabled bool) *ConsoleSender {
	return &ConsoleSender{enabled: enabled}
}

func (m *ConsoleSender) SendOTP(_ context.Context, destination, code string) error {
	if m.enabled {
		log.Printf("[DEV-OTP] destination=%s code=%s", destination, code)
	}
	return nil
}
