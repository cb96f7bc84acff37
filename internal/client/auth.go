// internal/client/auth.go
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// AuthClient wraps the remote auth/user service. The gateway never handles
// credentials itself; it forwards them and relays the issued tokens.
type AuthClient struct {
	*Client
}

// NewAuthClient creates an auth service client
func NewAuthClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *AuthClient {
	return &AuthClient{Client: newClient(baseURL, timeout, logger)}
}

// User is the profile shape returned by the auth service
type User struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	FullName  string        `json:"full_name,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	IsAdmin   bool          `json:"is_admin"`
	Addresses []UserAddress `json:"addresses,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// UserAddress is a saved delivery address
type UserAddress struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	AddressLine string `json:"address_line"`
	Ward        string `json:"ward,omitempty"`
	District    string `json:"district,omitempty"`
	Province    string `json:"province,omitempty"`
	RegionID    string `json:"region_id,omitempty"`
	IsDefault   bool   `json:"is_default"`
}

// TokenPair is the access/refresh token pair issued by the auth service
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user,omitempty"`
}

// LoginRequest carries user credentials, forwarded untouched
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a new account on the auth service
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// AddressRequest creates or updates a saved address
type AddressRequest struct {
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	AddressLine string `json:"address_line"`
	Ward        string `json:"ward,omitempty"`
	District    string `json:"district,omitempty"`
	Province    string `json:"province,omitempty"`
	RegionID    string `json:"region_id,omitempty"`
	IsDefault   bool   `json:"is_default"`
}

// Login exchanges credentials for a token pair
func (c *AuthClient) Login(ctx context.Context, req *LoginRequest) (*TokenPair, error) {
	var result TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates an account and returns the initial token pair
func (c *AuthClient) Register(ctx context.Context, req *RegisterRequest) (*TokenPair, error) {
	var result TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", nil, "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Refresh exchanges a refresh token for a fresh pair
func (c *AuthClient) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var result TokenPair
	body := map[string]string{"refresh_token": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", nil, "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Profile retrieves the authenticated user's profile
func (c *AuthClient) Profile(ctx context.Context, token string) (*User, error) {
	var result User
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/profile", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProfile updates the authenticated user's profile
func (c *AuthClient) UpdateProfile(ctx context.Context, token string, fields map[string]interface{}) (*User, error) {
	var result User
	if err := c.do(ctx, http.MethodPut, "/api/v1/auth/profile", nil, token, fields, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAddresses retrieves the user's saved addresses
func (c *AuthClient) ListAddresses(ctx context.Context, token string) ([]UserAddress, error) {
	var result []UserAddress
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/addresses", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateAddress saves a new address
func (c *AuthClient) CreateAddress(ctx context.Context, token string, req *AddressRequest) (*UserAddress, error) {
	var result UserAddress
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/addresses", nil, token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateAddress updates a saved address
func (c *AuthClient) UpdateAddress(ctx context.Context, token, id string, req *AddressRequest) (*UserAddress, error) {
	var result UserAddress
	if err := c.do(ctx, http.MethodPut, "/api/v1/users/addresses/"+id, nil, token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteAddress removes a saved address
func (c *AuthClient) DeleteAddress(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/users/addresses/"+id, nil, token, nil, nil)
}
