package gateway

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/hisarandre/P5-yoga-app/internal/model"
)

// SessionFields are the editable fields of a session. Create and Update send
// exactly these four fields; attendees and timestamps are server-owned.
type SessionFields struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	TeacherID   int64     `json:"teacher_id"`
}

type SessionGateway struct {
	c *Client
}

func (g *SessionGateway) All(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	if err := g.c.call(ctx, http.MethodGet, nil, &sessions, "session"); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (g *SessionGateway) Detail(ctx context.Context, id int64) (model.Session, error) {
	var session model.Session
	if err := g.c.call(ctx, http.MethodGet, nil, &session, "session", itoa(id)); err != nil {
		return model.Session{}, err
	}
	return session, nil
}

func (g *SessionGateway) Create(ctx context.Context, fields SessionFields) (model.Session, error) {
	var session model.Session
	if err := g.c.call(ctx, http.MethodPost, fields, &session, "session"); err != nil {
		return model.Session{}, err
	}
	return session, nil
}

func (g *SessionGateway) Update(ctx context.Context, id int64, fields SessionFields) (model.Session, error) {
	var session model.Session
	if err := g.c.call(ctx, http.MethodPut, fields, &session, "session", itoa(id)); err != nil {
		return model.Session{}, err
	}
	return session, nil
}

func (g *SessionGateway) Delete(ctx context.Context, id int64) error {
	return g.c.call(ctx, http.MethodDelete, nil, nil, "session", itoa(id))
}

func (g *SessionGateway) Participate(ctx context.Context, sessionID, userID int64) error {
	return g.c.call(ctx, http.MethodPost, nil, nil, "session", itoa(sessionID), "participate", itoa(userID))
}

func (g *SessionGateway) Unparticipate(ctx context.Context, sessionID, userID int64) error {
	return g.c.call(ctx, http.MethodDelete, nil, nil, "session", itoa(sessionID), "participate", itoa(userID))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
