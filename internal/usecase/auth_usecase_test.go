package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SupreetAmrad/e-commerce-backend/internal/clients"
	"github.com/SupreetAmrad/e-commerce-backend/internal/session"
)

type mockAuthClient struct {
	token       string
	loginErr    error
	registerErr error
	lastEmail   string
	lastReg     clients.Registration
}

func (m *mockAuthClient) Login(_ context.Context, email, _ string) (string, error) {
	m.lastEmail = email
	if m.loginErr != nil {
		return "", m.loginErr
	}
	return m.token, nil
}

func (m *mockAuthClient) Register(_ context.Context, reg clients.Registration) error {
	m.lastReg = reg
	return m.registerErr
}

func TestLogin_Success_StoresToken(t *testing.T) {
	client := &mockAuthClient{token: "abc"}
	uc := NewAuthUseCase(client, testLogger())
	state := session.NewState()

	err := uc.Login(context.Background(), state, "user@shop.test", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "abc", state.Token)
	assert.Equal(t, "user@shop.test", client.lastEmail)
}

func TestLogin_Rejected_MapsToInvalidCredentials(t *testing.T) {
	client := &mockAuthClient{loginErr: clients.ErrAuthRejected}
	uc := NewAuthUseCase(client, testLogger())
	state := session.NewState()

	err := uc.Login(context.Background(), state, "user@shop.test", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, state.Token)
}

func TestLogin_TransportError_IsNotInvalidCredentials(t *testing.T) {
	client := &mockAuthClient{loginErr: errors.New("connection refused")}
	uc := NewAuthUseCase(client, testLogger())
	state := session.NewState()

	err := uc.Login(context.Background(), state, "user@shop.test", "hunter2")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, state.Token)
}

func TestRegister_Success(t *testing.T) {
	client := &mockAuthClient{}
	uc := NewAuthUseCase(client, testLogger())

	reg := clients.Registration{FirstName: "Ada", LastName: "L", Email: "ada@shop.test", Password: "s3cret"}
	require.NoError(t, uc.Register(context.Background(), reg))
	assert.Equal(t, reg, client.lastReg)
}

func TestRegister_Rejected(t *testing.T) {
	client := &mockAuthClient{registerErr: clients.ErrAuthRejected}
	uc := NewAuthUseCase(client, testLogger())

	err := uc.Register(context.Background(), clients.Registration{Email: "dup@shop.test"})
	assert.ErrorIs(t, err, ErrRegistrationRejected)
}

func TestRegister_TransportError(t *testing.T) {
	client := &mockAuthClient{registerErr: errors.New("timeout")}
	uc := NewAuthUseCase(client, testLogger())

	err := uc.Register(context.Background(), clients.Registration{Email: "ada@shop.test"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRegistrationRejected)
}
