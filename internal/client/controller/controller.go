// Package controller implements the client workflows: login and registration,
// the session detail participation machine, the create/update session form,
// and the account page. Controllers orchestrate gateways and the session
// store; they never cache entity data beyond a single view's lifetime.
package controller

import (
	"context"

	"github.com/hisarandre/P5-yoga-app/internal/client/gateway"
	"github.com/hisarandre/P5-yoga-app/internal/model"
)

// Notifier shows a transient user-visible message.
type Notifier interface {
	Notify(message string)
}

// Navigator moves the UI to another view.
type Navigator interface {
	NavigateTo(path string)
}

const genericErrorMessage = "An error occurred"

type sessionAPI interface {
	Detail(ctx context.Context, id int64) (model.Session, error)
	Create(ctx context.Context, fields gateway.SessionFields) (model.Session, error)
	Update(ctx context.Context, id int64, fields gateway.SessionFields) (model.Session, error)
	Delete(ctx context.Context, id int64) error
	Participate(ctx context.Context, sessionID, userID int64) error
	Unparticipate(ctx context.Context, sessionID, userID int64) error
}

type teacherAPI interface {
	Detail(ctx context.Context, id int64) (model.Teacher, error)
}

type userAPI interface {
	Detail(ctx context.Context, id int64) (model.User, error)
	Delete(ctx context.Context, id int64) error
}

type authAPI interface {
	Login(ctx context.Context, req gateway.LoginRequest) (model.SessionInformation, error)
	Register(ctx context.Context, req gateway.RegisterRequest) error
}
