package clients

import (
	"context"
	"net/http"
)

type AuthClient struct{ c *Client }

func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is what the API hands back on register/login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (ac *AuthClient) Register(ctx context.Context, name, email, password string) (Session, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var sess Session
	err := ac.c.Do(ctx, http.MethodPost, "/api/auth/register", nil, body, &sess)
	return sess, err
}

func (ac *AuthClient) Login(ctx context.Context, email, password string) (Session, error) {
	body := map[string]string{"email": email, "password": password}
	var sess Session
	err := ac.c.Do(ctx, http.MethodPost, "/api/auth/login", nil, body, &sess)
	return sess, err
}

func (ac *AuthClient) Logout(ctx context.Context) error {
	return ac.c.Do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}

func (ac *AuthClient) Me(ctx context.Context) (User, error) {
	var u User
	err := ac.c.Do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &u)
	return u, err
}

func (ac *AuthClient) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return ac.c.Do(ctx, http.MethodPut, "/api/auth/password", nil, body, nil)
}
