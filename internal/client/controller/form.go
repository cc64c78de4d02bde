package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/hisarandre/P5-yoga-app/internal/client/gateway"
	"github.com/hisarandre/P5-yoga-app/internal/client/session"
)

// FormValues are the raw form inputs. The date is the form's "2006-01-02"
// string; it is validated and parsed before anything goes on the wire.
type FormValues struct {
	Name        string
	Date        string
	TeacherID   int64
	Description string
}

// ValidationError blocks submission before any network call.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field: %s", e.Field)
}

const dateLayout = "2006-01-02"

func (v FormValues) parse() (gateway.SessionFields, error) {
	if v.Name == "" {
		return gateway.SessionFields{}, &ValidationError{Field: "name"}
	}
	date, err := time.Parse(dateLayout, v.Date)
	if err != nil {
		return gateway.SessionFields{}, &ValidationError{Field: "date"}
	}
	if v.TeacherID <= 0 {
		return gateway.SessionFields{}, &ValidationError{Field: "teacher_id"}
	}
	if v.Description == "" {
		return gateway.SessionFields{}, &ValidationError{Field: "description"}
	}
	return gateway.SessionFields{
		Name:        v.Name,
		Date:        date,
		Description: v.Description,
		TeacherID:   v.TeacherID,
	}, nil
}

// SessionForm drives the create/update session form. The mode is classified
// once at construction: a session id means update, none means create.
type SessionForm struct {
	sessionID int64
	update    bool
	admin     bool
	denied    bool

	sessions sessionAPI
	notifier Notifier
	nav      Navigator

	values FormValues
	loaded bool
}

// NewSessionForm builds the controller. sessionID zero means create mode.
func NewSessionForm(store *session.Store, sessions sessionAPI, notifier Notifier, nav Navigator, sessionID int64) *SessionForm {
	info, _ := store.Information()
	return &SessionForm{
		sessionID: sessionID,
		update:    sessionID != 0,
		admin:     info.Admin,
		sessions:  sessions,
		notifier:  notifier,
		nav:       nav,
	}
}

func (f *SessionForm) IsUpdate() bool {
	return f.update
}

// Values returns the current form values (pre-filled in update mode).
func (f *SessionForm) Values() FormValues {
	return f.values
}

// Load applies the admin guard, then in update mode pre-fills the form from
// the existing session. Non-admins are sent back to the session list and no
// fetch is issued.
func (f *SessionForm) Load(ctx context.Context) {
	if !f.admin {
		f.denied = true
		f.nav.NavigateTo("/sessions")
		return
	}
	if !f.update {
		f.loaded = true
		return
	}

	existing, err := f.sessions.Detail(ctx, f.sessionID)
	if err != nil {
		f.notifier.Notify(genericErrorMessage)
		return
	}
	f.values = FormValues{
		Name:        existing.Name,
		Date:        existing.Date.Format(dateLayout),
		TeacherID:   existing.TeacherID,
		Description: existing.Description,
	}
	f.loaded = true
}

// Submit validates, then dispatches to create or update according to the mode
// fixed at construction. On success it notifies and navigates to the session
// list; on failure the form stays as it is.
func (f *SessionForm) Submit(ctx context.Context, values FormValues) error {
	if f.denied {
		return &ValidationError{Field: "access"}
	}
	fields, err := values.parse()
	if err != nil {
		return err
	}

	if f.update {
		_, err = f.sessions.Update(ctx, f.sessionID, fields)
	} else {
		_, err = f.sessions.Create(ctx, fields)
	}
	if err != nil {
		f.notifier.Notify(genericErrorMessage)
		return err
	}

	if f.update {
		f.notifier.Notify("Session updated !")
	} else {
		f.notifier.Notify("Session created !")
	}
	f.nav.NavigateTo("/sessions")
	return nil
}
