package api

import (
	"context"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/transport"
)

// DefaultVerifyPath is the session check endpoint.
const DefaultVerifyPath = "/api/auth/verify"

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the answer to a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Auth is the /api/auth group.
type Auth struct {
	res    *transport.Resource
	client *transport.Client
	verify string
}

// NewAuth binds the auth endpoints. An empty verifyPath uses DefaultVerifyPath.
func NewAuth(c *transport.Client, verifyPath string) *Auth {
	if verifyPath == "" {
		verifyPath = DefaultVerifyPath
	}
	return &Auth{res: c.Resource(AuthPath), client: c, verify: verifyPath}
}

// Login exchanges credentials for a token.
func (a *Auth) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := a.res.Post(ctx, "login", transport.JSON(req), &out)
	return out, err
}

// Logout tells the server to end the session.
func (a *Auth) Logout(ctx context.Context) error {
	return a.res.Post(ctx, "logout", nil, nil)
}

// Verify checks the current token with the server and returns the user it belongs to.
func (a *Auth) Verify(ctx context.Context) (domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	err := a.client.Do(ctx, "GET", a.verify, nil, &out)
	return out.User, err
}
