package controller

import (
	"context"
	"errors"
	"time"

	"github.com/hisarandre/P5-yoga-app/internal/client/gateway"
	"github.com/hisarandre/P5-yoga-app/internal/client/session"
	"github.com/hisarandre/P5-yoga-app/internal/model"
)

var errTest = errors.New("boom")

type call struct {
	name      string
	sessionID int64
	userID    int64
	fields    gateway.SessionFields
}

type fakeSessionAPI struct {
	calls []call

	detailResult model.Session
	detailErr    error
	createErr    error
	updateErr    error
	deleteErr    error
	partErr      error
	unpartErr    error

	// onParticipate runs inside Participate, before it returns; used to
	// exercise re-entrant clicks while a transition is in flight.
	onParticipate func()
	// onDetail runs inside Detail; used to exercise disposal mid-fetch.
	onDetail func()
}

func (f *fakeSessionAPI) Detail(_ context.Context, id int64) (model.Session, error) {
	f.calls = append(f.calls, call{name: "detail", sessionID: id})
	if f.onDetail != nil {
		f.onDetail()
	}
	return f.detailResult, f.detailErr
}

func (f *fakeSessionAPI) Create(_ context.Context, fields gateway.SessionFields) (model.Session, error) {
	f.calls = append(f.calls, call{name: "create", fields: fields})
	return f.detailResult, f.createErr
}

func (f *fakeSessionAPI) Update(_ context.Context, id int64, fields gateway.SessionFields) (model.Session, error) {
	f.calls = append(f.calls, call{name: "update", sessionID: id, fields: fields})
	return f.detailResult, f.updateErr
}

func (f *fakeSessionAPI) Delete(_ context.Context, id int64) error {
	f.calls = append(f.calls, call{name: "delete", sessionID: id})
	return f.deleteErr
}

func (f *fakeSessionAPI) Participate(_ context.Context, sessionID, userID int64) error {
	f.calls = append(f.calls, call{name: "participate", sessionID: sessionID, userID: userID})
	if f.onParticipate != nil {
		f.onParticipate()
	}
	return f.partErr
}

func (f *fakeSessionAPI) Unparticipate(_ context.Context, sessionID, userID int64) error {
	f.calls = append(f.calls, call{name: "unparticipate", sessionID: sessionID, userID: userID})
	return f.unpartErr
}

func (f *fakeSessionAPI) named(name string) []call {
	var out []call
	for _, c := range f.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

type fakeTeacherAPI struct {
	teacher model.Teacher
	err     error
	calls   int
}

func (f *fakeTeacherAPI) Detail(_ context.Context, id int64) (model.Teacher, error) {
	f.calls++
	return f.teacher, f.err
}

type fakeUserAPI struct {
	user      model.User
	detailErr error
	deleteErr error
	deleted   []int64
	onDelete  func()
}

func (f *fakeUserAPI) Detail(_ context.Context, id int64) (model.User, error) {
	return f.user, f.detailErr
}

func (f *fakeUserAPI) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	if f.onDelete != nil {
		f.onDelete()
	}
	return f.deleteErr
}

type fakeAuthAPI struct {
	info        model.SessionInformation
	loginErr    error
	registerErr error
}

func (f *fakeAuthAPI) Login(_ context.Context, _ gateway.LoginRequest) (model.SessionInformation, error) {
	return f.info, f.loginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, _ gateway.RegisterRequest) error {
	return f.registerErr
}

// recorder captures notifications and navigations in dispatch order.
type recorder struct {
	events []string
}

func (r *recorder) Notify(message string) {
	r.events = append(r.events, "notify:"+message)
}

func (r *recorder) NavigateTo(path string) {
	r.events = append(r.events, "navigate:"+path)
}

func loggedInStore(id int64, admin bool) *session.Store {
	store := session.NewStore()
	store.LogIn(model.SessionInformation{
		Token:     "abc",
		Type:      "Bearer",
		ID:        id,
		Username:  "test@test.com",
		FirstName: "Test",
		LastName:  "User",
		Admin:     admin,
	})
	return store
}

func testSession(users ...int64) model.Session {
	return model.Session{
		ID:          1,
		Name:        "Morning flow",
		Description: "A nice yoga session",
		Date:        time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		TeacherID:   1,
		Users:       users,
	}
}
