package auth

import (
	"context"
	"testing"
	"time"

	"inspectbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStateManager struct {
	mock.Mock
}

func (m *MockStateManager) Login(identifier string) domain.AppState {
	args := m.Called(identifier)
	return args.Get(0).(domain.AppState)
}

func (m *MockStateManager) Logout() {
	m.Called()
}

func (m *MockStateManager) State() domain.AppState {
	args := m.Called()
	return args.Get(0).(domain.AppState)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(identifier, crn, sessionID string) (string, error) {
	args := m.Called(identifier, crn, sessionID)
	return args.String(0), args.Error(1)
}

func loggedInState(identifier string) domain.AppState {
	return domain.AppState{
		User:            &domain.User{PhoneOrEmail: identifier, LoginTime: "2026-08-28T10:00:00Z"},
		IsAuthenticated: true,
		CRN:             "CRN4242",
		Orders:          []domain.Order{},
		OrderCounter:    1,
	}
}

func newTestService(manager StateManager, jwt tokenIssuer) *Service {
	return NewService(manager, jwt, NewConsoleSender(false), 5*time.Minute, 0, 5, "1234")
}

func TestVerifyOTP_Success(t *testing.T) {
	manager := new(MockStateManager)
	manager.On("Login", "client@example.com").Return(loggedInState("client@example.com"))

	jwt := new(MockTokenIssuer)
	jwt.On("GenerateToken", "client@example.com", "CRN4242", mock.Anything).Return("token-abc", nil)

	svc := newTestService(manager, jwt)

	_, err := svc.RequestOTP(context.Background(), "Client@Example.com ")
	require.NoError(t, err)

	result, err := svc.VerifyOTP(context.Background(), "client@example.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", result.Token)
	assert.Equal(t, "CRN4242", result.CRN)
	require.NotNil(t, result.User)
	assert.Equal(t, "client@example.com", result.User.PhoneOrEmail)

	manager.AssertExpectations(t)
	jwt.AssertExpectations(t)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	svc := newTestService(new(MockStateManager), new(MockTokenIssuer))

	_, err := svc.RequestOTP(context.Background(), "client@example.com")
	require.NoError(t, err)

	_, err = svc.VerifyOTP(context.Background(), "client@example.com", "9999")
	assert.ErrorIs(t, err, ErrInvalidOTP)

	// The pending code survives a wrong attempt.
	manager := new(MockStateManager)
	manager.On("Login", "client@example.com").Return(loggedInState("client@example.com"))
	jwt := new(MockTokenIssuer)
	jwt.On("GenerateToken", mock.Anything, mock.Anything, mock.Anything).Return("t", nil)
	svc.manager = manager
	svc.jwt = jwt

	_, err = svc.VerifyOTP(context.Background(), "client@example.com", "1234")
	assert.NoError(t, err)
}

func TestVerifyOTP_NoPendingCode(t *testing.T) {
	svc := newTestService(new(MockStateManager), new(MockTokenIssuer))

	_, err := svc.VerifyOTP(context.Background(), "client@example.com", "1234")
	assert.ErrorIs(t, err, ErrNoPendingOTP)
}

func TestVerifyOTP_CodeConsumedOnSuccess(t *testing.T) {
	manager := new(MockStateManager)
	manager.On("Login", "client@example.com").Return(loggedInState("client@example.com"))
	jwt := new(MockTokenIssuer)
	jwt.On("GenerateToken", mock.Anything, mock.Anything, mock.Anything).Return("t", nil)

	svc := newTestService(manager, jwt)

	_, err := svc.RequestOTP(context.Background(), "client@example.com")
	require.NoError(t, err)
	_, err = svc.VerifyOTP(context.Background(), "client@example.com", "1234")
	require.NoError(t, err)

	_, err = svc.VerifyOTP(context.Background(), "client@example.com", "1234")
	assert.ErrorIs(t, err, ErrNoPendingOTP)
}

func TestVerifyOTP_Expired(t *testing.T) {
	svc := NewService(new(MockStateManager), new(MockTokenIssuer), NewConsoleSender(false),
		time.Millisecond, 0, 5, "1234")

	_, err := svc.RequestOTP(context.Background(), "client@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.VerifyOTP(context.Background(), "client@example.com", "1234")
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestVerifyOTP_TooManyAttempts(t *testing.T) {
	svc := NewService(new(MockStateManager), new(MockTokenIssuer), NewConsoleSender(false),
		5*time.Minute, 0, 2, "1234")

	_, err := svc.RequestOTP(context.Background(), "client@example.com")
	require.NoError(t, err)

	_, err = svc.VerifyOTP(context.Background(), "client@example.com", "0000")
	assert.ErrorIs(t, err, ErrInvalidOTP)
	_, err = svc.VerifyOTP(context.Background(), "client@example.com", "0001")
	assert.ErrorIs(t, err, ErrInvalidOTP)

	// Attempt cap reached: even the right code is rejected now.
	_, err = svc.VerifyOTP(context.Background(), "client@example.com", "1234")
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestRequestOTP_ResendCooldown(t *testing.T) {
	svc := NewService(new(MockStateManager), new(MockTokenIssuer), NewConsoleSender(false),
		5*time.Minute, time.Hour, 5, "1234")

	_, err := svc.RequestOTP(context.Background(), "client@example.com")
	require.NoError(t, err)

	_, err = svc.RequestOTP(context.Background(), "client@example.com")
	assert.ErrorIs(t, err, ErrRateLimitExceeded)

	// A different identifier is unaffected.
	_, err = svc.RequestOTP(context.Background(), "other@example.com")
	assert.NoError(t, err)
}

func TestLogout_DelegatesToManager(t *testing.T) {
	manager := new(MockStateManager)
	manager.On("Logout").Return()

	svc := newTestService(manager, new(MockTokenIssuer))
	svc.Logout(context.Background())

	manager.AssertExpectations(t)
}

func TestCurrentSession(t *testing.T) {
	manager := new(MockStateManager)
	manager.On("State").Return(loggedInState("client@example.com")).Once()

	svc := newTestService(manager, new(MockTokenIssuer))

	session, ok := svc.CurrentSession(context.Background())
	require.True(t, ok)
	assert.Equal(t, "CRN4242", session.CRN)

	manager = new(MockStateManager)
	manager.On("State").Return(domain.EmptyState())
	svc.manager = manager

	_, ok = svc.CurrentSession(context.Background())
	assert.False(t, ok)
}
