package repository

import (
	"context"
	"errors"

	"github.com/hisarandre/P5-yoga-app/internal/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// Store is the persistence boundary of the API server. Postgres backs
// production; Memory backs tests and DSN-less development runs.
type Store interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, id int64) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateTeacher(ctx context.Context, teacher model.Teacher) (model.Teacher, error)
	ListTeachers(ctx context.Context) ([]model.Teacher, error)
	GetTeacher(ctx context.Context, id int64) (model.Teacher, error)

	CreateSession(ctx context.Context, session model.Session) (model.Session, error)
	ListSessions(ctx context.Context) ([]model.Session, error)
	GetSession(ctx context.Context, id int64) (model.Session, error)
	UpdateSession(ctx context.Context, id int64, session model.Session) (model.Session, error)
	DeleteSession(ctx context.Context, id int64) error

	AddParticipant(ctx context.Context, sessionID, userID int64) error
	RemoveParticipant(ctx context.Context, sessionID, userID int64) error
}
