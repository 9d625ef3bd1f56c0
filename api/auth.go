package api

import (
	"context"
	"net/http"

	"mealbridge/domain"
)

// Session is what the backend hands back on login and register.
type Session struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (c *Client) Register(ctx context.Context, in domain.RegisterInput) (Session, error) {
	if err := in.Validate(); err != nil {
		return Session{}, err
	}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}
