package controller

import (
	"context"
	"sync"

	"github.com/hisarandre/P5-yoga-app/internal/client/session"
	"github.com/hisarandre/P5-yoga-app/internal/model"
)

// Detail drives the session detail view for one session id: load, participate,
// unparticipate, and (for admins) delete. Participation state is always
// derived from a fresh fetch, never mutated locally, so the attendee count and
// button state reflect server truth after every transition.
type Detail struct {
	sessionID int64
	selfID    int64
	admin     bool

	sessions sessionAPI
	teachers teacherAPI
	notifier Notifier
	nav      Navigator

	mu              sync.Mutex
	busy            bool
	disposed        bool
	loaded          bool
	session         model.Session
	teacher         model.Teacher
	isParticipating bool
}

// NewDetail reads the current identity once: the user id drives the
// participation checks and the admin flag drives delete-button visibility.
func NewDetail(store *session.Store, sessions sessionAPI, teachers teacherAPI, notifier Notifier, nav Navigator, sessionID int64) *Detail {
	info, _ := store.Information()
	return &Detail{
		sessionID: sessionID,
		selfID:    info.ID,
		admin:     info.Admin,
		sessions:  sessions,
		teachers:  teachers,
		notifier:  notifier,
		nav:       nav,
	}
}

func (d *Detail) IsAdmin() bool {
	return d.admin
}

func (d *Detail) Session() (model.Session, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session, d.loaded
}

func (d *Detail) Teacher() (model.Teacher, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.teacher, d.loaded
}

func (d *Detail) IsParticipating() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isParticipating
}

// Load fetches the session and its teacher and recomputes participation.
func (d *Detail) Load(ctx context.Context) {
	if !d.begin(true) {
		return
	}
	d.refresh(ctx)
}

// Participate books the current user onto the session, then re-fetches the
// whole session instead of splicing the attendee list locally. While the
// transition is in flight further transitions are ignored.
func (d *Detail) Participate(ctx context.Context) {
	if !d.begin(false) {
		return
	}
	if err := d.sessions.Participate(ctx, d.sessionID, d.selfID); err != nil {
		d.finish()
		d.notifier.Notify(genericErrorMessage)
		return
	}
	d.refresh(ctx)
}

// Unparticipate removes the booking, with the same re-fetch discipline.
func (d *Detail) Unparticipate(ctx context.Context) {
	if !d.begin(false) {
		return
	}
	if err := d.sessions.Unparticipate(ctx, d.sessionID, d.selfID); err != nil {
		d.finish()
		d.notifier.Notify(genericErrorMessage)
		return
	}
	d.refresh(ctx)
}

// Delete removes the session. On success the controller is terminal: it
// notifies, asks for navigation away, and ignores everything afterwards.
func (d *Detail) Delete(ctx context.Context) {
	if !d.admin {
		return
	}
	if !d.begin(false) {
		return
	}
	if err := d.sessions.Delete(ctx, d.sessionID); err != nil {
		d.finish()
		d.notifier.Notify(genericErrorMessage)
		return
	}

	d.mu.Lock()
	d.disposed = true
	d.busy = false
	d.mu.Unlock()

	d.notifier.Notify("Session deleted !")
	d.nav.NavigateTo("/sessions")
}

// Dispose discards the controller; late completions no longer mutate state.
func (d *Detail) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disposed = true
}

// begin acquires the transition latch. Transitions other than the initial
// load require the machine to be in the loaded state.
func (d *Detail) begin(initial bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed || d.busy {
		return false
	}
	if !initial && !d.loaded {
		return false
	}
	d.busy = true
	return true
}

func (d *Detail) finish() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.busy = false
}

// refresh fetches session then teacher and installs the result, releasing the
// latch. On failure the previous view state is kept untouched. Called with
// the latch held.
func (d *Detail) refresh(ctx context.Context) {
	fetched, err := d.sessions.Detail(ctx, d.sessionID)
	if err != nil {
		d.finish()
		d.notifier.Notify(genericErrorMessage)
		return
	}
	teacher, err := d.teachers.Detail(ctx, fetched.TeacherID)
	if err != nil {
		d.finish()
		d.notifier.Notify(genericErrorMessage)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.busy = false
	if d.disposed {
		return
	}
	d.session = fetched
	d.teacher = teacher
	d.isParticipating = contains(fetched.Users, d.selfID)
	d.loaded = true
}

func contains(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
