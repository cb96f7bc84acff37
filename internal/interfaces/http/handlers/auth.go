// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/client"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/cart"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
)

// AuthHandler proxies authentication and profile management to the remote
// auth service. Credentials pass through untouched; the gateway only relays
// the issued tokens.
type AuthHandler struct {
	clients *client.Clients
	store   *cart.Store
	config  *config.Config
	logger  *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(clients *client.Clients, store *cart.Store, cfg *config.Config, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		clients: clients,
		store:   store,
		config:  cfg,
		logger:  logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req client.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	tokens, err := h.clients.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		h.remoteError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    tokens,
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req client.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	tokens, err := h.clients.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		h.remoteError(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"data":    tokens,
	})
}

// RefreshToken handles POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	tokens, err := h.clients.Auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.remoteError(c, err, "Token refresh failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"data":    tokens,
	})
}

// Logout handles POST /auth/logout. The session's cart snapshot goes with
// it; the remote auth service owns token revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		h.store.Clear(c.Request.Context(), "user:"+userID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetProfile handles GET /auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	user, err := h.clients.Auth.Profile(c.Request.Context(), token)
	if err != nil {
		h.remoteError(c, err, "Failed to retrieve profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    user,
	})
}

// UpdateProfile handles PUT /auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, err := h.clients.Auth.UpdateProfile(c.Request.Context(), token, fields)
	if err != nil {
		h.remoteError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"data":    user,
	})
}

// ListAddresses handles GET /users/addresses
func (h *AuthHandler) ListAddresses(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	addresses, err := h.clients.Auth.ListAddresses(c.Request.Context(), token)
	if err != nil {
		h.remoteError(c, err, "Failed to retrieve addresses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Addresses retrieved successfully",
		"data":    addresses,
	})
}

// CreateAddress handles POST /users/addresses
func (h *AuthHandler) CreateAddress(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	var req client.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	address, err := h.clients.Auth.CreateAddress(c.Request.Context(), token, &req)
	if err != nil {
		h.remoteError(c, err, "Failed to create address")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Address created successfully",
		"data":    address,
	})
}

// UpdateAddress handles PUT /users/addresses/:id
func (h *AuthHandler) UpdateAddress(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	var req client.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	address, err := h.clients.Auth.UpdateAddress(c.Request.Context(), token, c.Param("id"), &req)
	if err != nil {
		h.remoteError(c, err, "Failed to update address")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address updated successfully",
		"data":    address,
	})
}

// DeleteAddress handles DELETE /users/addresses/:id
func (h *AuthHandler) DeleteAddress(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	if err := h.clients.Auth.DeleteAddress(c.Request.Context(), token, c.Param("id")); err != nil {
		h.remoteError(c, err, "Failed to delete address")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address deleted successfully",
	})
}

func (h *AuthHandler) remoteError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, client.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	h.logger.WithError(err).Error("auth service call failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
}
