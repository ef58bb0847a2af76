package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"poultryfarm/backend/internal/config"
)

// ErrInvalidToken indicates the identity service rejected the session token.
var ErrInvalidToken = errors.New("invalid session token")

// Client exposes the external identity-service operations used by the
// application. Accounts and session tokens live entirely in that service;
// this backend only verifies and administers them over its REST API.
type Client interface {
	VerifyToken(ctx context.Context, idToken string) (*Account, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error)
	DeleteAccount(ctx context.Context, uid string) error
}

// Account is the subset of the identity record this backend cares about.
type Account struct {
	UID         string
	Email       string
	DisplayName string
}

// CreateAccountRequest carries the fields for provisioning a new account.
type CreateAccountRequest struct {
	Email       string
	Password    string
	DisplayName string
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient builds an identity service client from configuration.
func NewClient(cfg config.IdentityConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		apiKey:     cfg.APIKey,
	}
}

type accountPayload struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type lookupResponse struct {
	Users []accountPayload `json:"users"`
}

// apiError mirrors the identity service's error envelope.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// VerifyToken resolves a session token to its account. An unknown or
// expired token yields ErrInvalidToken.
func (c *APIClient) VerifyToken(ctx context.Context, idToken string) (*Account, error) {
	result := new(lookupResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(map[string]any{"idToken": idToken}).
		SetResult(result).
		SetError(apiErr).
		Post("/v1/accounts:lookup")
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, apiErr.Error.Message)
	}
	if len(result.Users) == 0 {
		return nil, ErrInvalidToken
	}

	account := result.Users[0]
	return &Account{UID: account.LocalID, Email: account.Email, DisplayName: account.DisplayName}, nil
}

// CreateAccount provisions a new account in the identity service.
func (c *APIClient) CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	result := new(accountPayload)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(map[string]any{
			"email":       req.Email,
			"password":    req.Password,
			"displayName": req.DisplayName,
		}).
		SetResult(result).
		SetError(apiErr).
		Post("/v1/accounts:signUp")
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("identity api error: code=%d, message=%s", resp.StatusCode(), apiErr.Error.Message)
	}

	return &Account{UID: result.LocalID, Email: result.Email, DisplayName: result.DisplayName}, nil
}

// DeleteAccount removes an account from the identity service.
func (c *APIClient) DeleteAccount(ctx context.Context, uid string) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(map[string]any{"localId": uid}).
		SetError(apiErr).
		Post("/v1/accounts:delete")
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("identity api error: code=%d, message=%s", resp.StatusCode(), apiErr.Error.Message)
	}
	return nil
}
