package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrAuthRejected means the backend answered the request but refused it
// (non-2xx status). Transport failures are returned as wrapped errors
// instead, so callers can tell the two apart.
var ErrAuthRejected = errors.New("authentication request rejected")

// Registration is the payload for the backend registration endpoint.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type AuthClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, reg Registration) error
}

type authHTTPClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewAuthHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) AuthClient {
	return &authHTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *authHTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	resp, err := c.postJSON(ctx, c.baseURL+"/api/auth/login", payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warnf("AuthClient: Login rejected for %s with status %d", email, resp.StatusCode)
		return "", ErrAuthRejected
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Errorf("AuthClient: Failed to decode login response for %s: %v", email, err)
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}

	c.log.Infof("AuthClient: Login succeeded for %s", email)
	return body.Token, nil
}

func (c *authHTTPClient) Register(ctx context.Context, reg Registration) error {
	resp, err := c.postJSON(ctx, c.baseURL+"/api/auth/register", reg)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warnf("AuthClient: Registration rejected for %s with status %d", reg.Email, resp.StatusCode)
		return ErrAuthRejected
	}

	c.log.Infof("AuthClient: Registration succeeded for %s", reg.Email)
	return nil
}

func (c *authHTTPClient) postJSON(ctx context.Context, reqURL string, payload interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		c.log.Errorf("AuthClient: Failed to marshal request body for %s: %v", reqURL, err)
		return nil, fmt.Errorf("failed to prepare auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(jsonData))
	if err != nil {
		c.log.Errorf("AuthClient: Failed to create request for %s: %v", reqURL, err)
		return nil, fmt.Errorf("failed to create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("AuthClient: Failed to execute request for %s: %v", reqURL, err)
		return nil, fmt.Errorf("failed to communicate with auth service: %w", err)
	}
	return resp, nil
}
