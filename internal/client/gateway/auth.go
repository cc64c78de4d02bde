package gateway

import (
	"context"
	"net/http"

	"github.com/hisarandre/P5-yoga-app/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

type AuthGateway struct {
	c *Client
}

func (g *AuthGateway) Login(ctx context.Context, req LoginRequest) (model.SessionInformation, error) {
	var info model.SessionInformation
	if err := g.c.call(ctx, http.MethodPost, req, &info, "auth", "login"); err != nil {
		return model.SessionInformation{}, err
	}
	return info, nil
}

func (g *AuthGateway) Register(ctx context.Context, req RegisterRequest) error {
	return g.c.call(ctx, http.MethodPost, req, nil, "auth", "register")
}
