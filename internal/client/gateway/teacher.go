package gateway

import (
	"context"
	"net/http"

	"github.com/hisarandre/P5-yoga-app/internal/model"
)

type TeacherGateway struct {
	c *Client
}

func (g *TeacherGateway) All(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	if err := g.c.call(ctx, http.MethodGet, nil, &teachers, "teacher"); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (g *TeacherGateway) Detail(ctx context.Context, id int64) (model.Teacher, error) {
	var teacher model.Teacher
	if err := g.c.call(ctx, http.MethodGet, nil, &teacher, "teacher", itoa(id)); err != nil {
		return model.Teacher{}, err
	}
	return teacher, nil
}
