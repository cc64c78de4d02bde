package gateway

import (
	"context"
	"net/http"

	"github.com/hisarandre/P5-yoga-app/internal/model"
)

type UserGateway struct {
	c *Client
}

func (g *UserGateway) Detail(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	if err := g.c.call(ctx, http.MethodGet, nil, &user, "user", itoa(id)); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (g *UserGateway) Delete(ctx context.Context, id int64) error {
	return g.c.call(ctx, http.MethodDelete, nil, nil, "user", itoa(id))
}
