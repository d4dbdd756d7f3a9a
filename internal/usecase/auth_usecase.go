package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SupreetAmrad/e-commerce-backend/internal/clients"
	"github.com/SupreetAmrad/e-commerce-backend/internal/session"
)

// ErrInvalidCredentials means the backend refused the login. Any other error
// from Login is a transport problem talking to the backend.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrRegistrationRejected means the backend refused the registration.
var ErrRegistrationRejected = errors.New("registration rejected")

type AuthUseCase interface {
	Login(ctx context.Context, state *session.State, email, password string) error
	Register(ctx context.Context, reg clients.Registration) error
}

type authUseCase struct {
	auth clients.AuthClient
	log  *logrus.Logger
}

func NewAuthUseCase(auth clients.AuthClient, logger *logrus.Logger) AuthUseCase {
	return &authUseCase{
		auth: auth,
		log:  logger,
	}
}

// Login forwards the credentials to the backend and, on success, stores the
// issued token in the session. The token is never inspected here; it is an
// opaque credential attached to later backend requests.
func (uc *authUseCase) Login(ctx context.Context, state *session.State, email, password string) error {
	uc.log.Infof("Use Case: Attempting login for email: %s", email)

	token, err := uc.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, clients.ErrAuthRejected) {
			uc.log.Warnf("Use Case: Login rejected for %s", email)
			return ErrInvalidCredentials
		}
		uc.log.Errorf("Use Case: Login failed for %s: %v", email, err)
		return fmt.Errorf("login request failed: %w", err)
	}

	state.Token = token
	uc.log.Infof("Use Case: Login succeeded for %s", email)
	return nil
}

// Register forwards the registration to the backend. Nothing is stored
// locally; the visitor still has to log in afterwards.
func (uc *authUseCase) Register(ctx context.Context, reg clients.Registration) error {
	uc.log.Infof("Use Case: Attempting registration for email: %s", reg.Email)

	if err := uc.auth.Register(ctx, reg); err != nil {
		if errors.Is(err, clients.ErrAuthRejected) {
			uc.log.Warnf("Use Case: Registration rejected for %s", reg.Email)
			return ErrRegistrationRejected
		}
		uc.log.Errorf("Use Case: Registration failed for %s: %v", reg.Email, err)
		return fmt.Errorf("registration request failed: %w", err)
	}

	uc.log.Infof("Use Case: Registration succeeded for %s", reg.Email)
	return nil
}
