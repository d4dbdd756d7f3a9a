package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SupreetAmrad/e-commerce-backend/internal/clients"
	"github.com/SupreetAmrad/e-commerce-backend/internal/domain"
	"github.com/SupreetAmrad/e-commerce-backend/internal/middleware"
	"github.com/SupreetAmrad/e-commerce-backend/internal/usecase"
)

type AuthHandler struct {
	auth usecase.AuthUseCase
	log  *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth usecase.AuthUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  logger,
	}
}

// LoginRequest defines the expected JSON body for login requests
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest defines the expected JSON body for registration requests
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

// Login handles POST /auth/login. On success the token lands in the session
// and the page closes the login dialog; a 401 means the dialog stays open
// with the invalid-credentials notice.
func (h *AuthHandler) Login(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Login")
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind login request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	handlerLogger.Infof("Processing login request for email: %s", req.Email)

	state := middleware.State(c)
	err := h.auth.Login(c.Request.Context(), state, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		handlerLogger.Errorf("Login request failed: %v", err)
		ErrorResponse(c, http.StatusBadGateway, "Error during login. Please try again.")
		return
	}

	SuccessResponse(c, http.StatusOK, "Successfully logged in!", domain.NoticeSuccess, nil)
}

// Register handles POST /auth/register. Success only prompts the visitor to
// log in; nothing about them is stored here.
func (h *AuthHandler) Register(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Register")
	var req RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind register request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	handlerLogger.Infof("Processing registration request for email: %s", req.Email)

	err := h.auth.Register(c.Request.Context(), clients.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrRegistrationRejected) {
			ErrorResponse(c, http.StatusBadRequest, "Registration failed. Please try again.")
			return
		}
		handlerLogger.Errorf("Registration request failed: %v", err)
		ErrorResponse(c, http.StatusBadGateway, "Error during registration. Please try again.")
		return
	}

	SuccessResponse(c, http.StatusOK, "Registration successful! Please login.", domain.NoticeSuccess, nil)
}
