package handlers

import (
	"errors"
	"net/http"

	"niryaat/middleware"
	"niryaat/models"
	"niryaat/services/session"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthHandler exposes the session lifecycle over HTTP.
type AuthHandler struct {
	Registry *session.Registry
}

// NewAuthHandler creates an AuthHandler backed by the session registry.
func NewAuthHandler(registry *session.Registry) *AuthHandler {
	return &AuthHandler{Registry: registry}
}

// AuthResponse carries the session token and the resulting session state.
type AuthResponse struct {
	Token   string          `json:"token"`
	State   session.State   `json:"state"`
	Profile *models.Profile `json:"profile,omitempty"`
}

// RegisterHandler handles sign-up. Validation failures surface verbatim
// with the offending field; no repository call happens before they pass.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var reg models.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	sessionID := uuid.New().String()
	mgr := h.Registry.Create(sessionID)

	snap, err := mgr.SignUp(reg)
	if err != nil {
		h.Registry.Remove(sessionID)

		var vErr session.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason, "field": vErr.Field})
			return
		}
		logger.Error("Registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Registration failed, please try again", "")
		return
	}

	token, err := h.issueToken(c, sessionID, mgr.AccountID())
	if err != nil {
		return
	}

	utils.Registrations.Inc()
	c.JSON(http.StatusCreated, AuthResponse{Token: token, State: snap.State, Profile: snap.Profile})
}

// LoginHandler handles sign-in.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	sessionID := uuid.New().String()
	mgr := h.Registry.Create(sessionID)

	snap, err := mgr.SignIn(req.Email, req.Password)
	if err != nil {
		h.Registry.Remove(sessionID)

		switch {
		case errors.Is(err, session.ErrInvalidCredentials):
			utils.SignInAttempts.WithLabelValues("invalid_credentials").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		case errors.Is(err, session.ErrProfileNotFound):
			utils.SignInAttempts.WithLabelValues("error").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No profile found for this account"})
		default:
			utils.SignInAttempts.WithLabelValues("error").Inc()
			logger.Error("Login failed", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "Sign in failed, please try again", "")
		}
		return
	}

	token, err := h.issueToken(c, sessionID, mgr.AccountID())
	if err != nil {
		return
	}

	if snap.State == session.AuthenticatedApproved {
		utils.SignInAttempts.WithLabelValues("approved").Inc()
	} else {
		utils.SignInAttempts.WithLabelValues("pending").Inc()
	}
	c.JSON(http.StatusOK, AuthResponse{Token: token, State: snap.State, Profile: snap.Profile})
}

// LogoutHandler signs the session out. Idempotent: signing out twice leaves
// the session Anonymous both times with no error.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	mgr := middleware.SessionFromContext(c)
	if mgr != nil {
		mgr.SignOut()
	}
	if sid, ok := c.Get(middleware.ContextSessionIDKey); ok {
		if sessionID, ok := sid.(string); ok {
			h.Registry.Remove(sessionID)
			_ = utils.DeleteSessionRecord(utils.GetSessionCacheClient(), sessionID)
		}
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Anonymous})
}

// SessionHandler returns the current session snapshot. Never blocks.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	mgr := middleware.SessionFromContext(c)
	if mgr == nil {
		c.JSON(http.StatusOK, gin.H{"state": session.Anonymous})
		return
	}
	snap := mgr.Current()
	c.JSON(http.StatusOK, gin.H{"state": snap.State, "profile": snap.Profile})
}

func (h *AuthHandler) issueToken(c *gin.Context, sessionID, accountID string) (string, error) {
	logger := getLogger(c)

	record := utils.SessionRecord{SessionID: sessionID, AccountID: accountID}
	if err := utils.SaveSessionRecord(utils.GetSessionCacheClient(), record); err != nil {
		logger.Error("Failed to persist session record", zap.Error(err))
	}

	token, err := utils.GenerateToken(accountID, sessionID, utils.SessionTTL)
	if err != nil {
		logger.Error("Failed to generate token", zap.Error(err))
		h.Registry.Remove(sessionID)
		utils.JSONError(c, http.StatusInternalServerError, "Sign in failed, please try again", "")
		return "", err
	}
	return token, nil
}
