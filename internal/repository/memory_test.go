package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hisarandre/P5-yoga-app/internal/model"
)

func seedSession(t *testing.T, store *Memory) (model.Session, model.User) {
	t.Helper()
	ctx := context.Background()

	teacher, err := store.CreateTeacher(ctx, model.Teacher{FirstName: "Margot", LastName: "DELAHAYE"})
	if err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	user, err := store.CreateUser(ctx, model.User{Email: "test@test.com", FirstName: "Test", LastName: "User"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	session, err := store.CreateSession(ctx, model.Session{
		Name:        "Morning flow",
		Description: "A nice yoga session",
		Date:        time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		TeacherID:   teacher.ID,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return session, user
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if _, err := store.CreateUser(ctx, model.User{Email: "test@test.com"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := store.CreateUser(ctx, model.User{Email: "test@test.com"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCreateSessionRequiresTeacher(t *testing.T) {
	store := NewMemory()
	_, err := store.CreateSession(context.Background(), model.Session{Name: "x", TeacherID: 99})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParticipationLifecycle(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	session, user := seedSession(t, store)

	if err := store.AddParticipant(ctx, session.ID, user.ID); err != nil {
		t.Fatalf("add participant: %v", err)
	}
	if err := store.AddParticipant(ctx, session.ID, user.ID); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate on second add, got %v", err)
	}

	fetched, err := store.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if len(fetched.Users) != 1 || fetched.Users[0] != user.ID {
		t.Fatalf("expected attendees [%d], got %v", user.ID, fetched.Users)
	}

	if err := store.RemoveParticipant(ctx, session.ID, user.ID); err != nil {
		t.Fatalf("remove participant: %v", err)
	}
	if err := store.RemoveParticipant(ctx, session.ID, user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}

	fetched, err = store.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if len(fetched.Users) != 0 {
		t.Fatalf("expected no attendees, got %v", fetched.Users)
	}
}

func TestAddParticipantUnknownUser(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	session, _ := seedSession(t, store)

	if err := store.AddParticipant(ctx, session.ID, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateSessionKeepsAttendees(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	session, user := seedSession(t, store)

	if err := store.AddParticipant(ctx, session.ID, user.ID); err != nil {
		t.Fatalf("add participant: %v", err)
	}

	updated, err := store.UpdateSession(ctx, session.ID, model.Session{
		Name:        "Evening flow",
		Description: session.Description,
		Date:        session.Date,
		TeacherID:   session.TeacherID,
	})
	if err != nil {
		t.Fatalf("update session: %v", err)
	}
	if updated.Name != "Evening flow" {
		t.Fatalf("expected updated name, got %s", updated.Name)
	}
	if len(updated.Users) != 1 {
		t.Fatalf("expected attendees preserved, got %v", updated.Users)
	}
}

func TestDeleteUserDropsParticipation(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	session, user := seedSession(t, store)

	if err := store.AddParticipant(ctx, session.ID, user.ID); err != nil {
		t.Fatalf("add participant: %v", err)
	}
	if err := store.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	fetched, err := store.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if len(fetched.Users) != 0 {
		t.Fatalf("expected attendee removed with user, got %v", fetched.Users)
	}
}

func TestDeleteSession(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	session, _ := seedSession(t, store)

	if err := store.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := store.GetSession(ctx, session.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteSession(ctx, session.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
