package controller

import (
	"context"
	"errors"
	"testing"
)

func validValues() FormValues {
	return FormValues{
		Name:        "Morning flow",
		Date:        "2026-01-15",
		TeacherID:   1,
		Description: "A nice yoga session",
	}
}

func TestNonAdminIsRedirectedWithoutAnyFetch(t *testing.T) {
	api := &fakeSessionAPI{}
	rec := &recorder{}
	form := NewSessionForm(loggedInStore(2, false), api, rec, rec, 1)

	form.Load(context.Background())

	if len(api.calls) != 0 {
		t.Fatalf("non-admin entry must not issue any call, got %v", api.calls)
	}
	if len(rec.events) != 1 || rec.events[0] != "navigate:/sessions" {
		t.Fatalf("expected immediate navigation away, got %v", rec.events)
	}

	if err := form.Submit(context.Background(), validValues()); err == nil {
		t.Fatalf("expected submit to be blocked after denial")
	}
	if len(api.named("create"))+len(api.named("update")) != 0 {
		t.Fatalf("denied form must never submit")
	}
}

func TestCreateModeSubmitsCreateOnly(t *testing.T) {
	api := &fakeSessionAPI{}
	rec := &recorder{}
	form := NewSessionForm(loggedInStore(1, true), api, rec, rec, 0)
	form.Load(context.Background())

	if form.IsUpdate() {
		t.Fatalf("expected create mode without a session id")
	}
	if err := form.Submit(context.Background(), validValues()); err != nil {
		t.Fatalf("submit error: %v", err)
	}

	if len(api.named("create")) != 1 {
		t.Fatalf("expected one create call")
	}
	if len(api.named("update")) != 0 {
		t.Fatalf("create mode must never call update")
	}
	created := api.named("create")[0].fields
	if created.Name != "Morning flow" || created.TeacherID != 1 || created.Description != "A nice yoga session" {
		t.Fatalf("unexpected submitted fields: %+v", created)
	}
	if created.Date.Format("2006-01-02") != "2026-01-15" {
		t.Fatalf("unexpected submitted date: %v", created.Date)
	}

	want := []string{"notify:Session created !", "navigate:/sessions"}
	if len(rec.events) != 2 || rec.events[0] != want[0] || rec.events[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, rec.events)
	}
}

func TestUpdateModePrefillsAndSubmitsUpdateOnly(t *testing.T) {
	api := &fakeSessionAPI{detailResult: testSession(3)}
	rec := &recorder{}
	form := NewSessionForm(loggedInStore(1, true), api, rec, rec, 1)
	form.Load(context.Background())

	if !form.IsUpdate() {
		t.Fatalf("expected update mode with a session id")
	}
	values := form.Values()
	if values.Name != "Morning flow" || values.Date != "2026-01-15" || values.TeacherID != 1 {
		t.Fatalf("expected prefilled values, got %+v", values)
	}

	values.Name = "Evening flow"
	if err := form.Submit(context.Background(), values); err != nil {
		t.Fatalf("submit error: %v", err)
	}

	updates := api.named("update")
	if len(updates) != 1 || updates[0].sessionID != 1 {
		t.Fatalf("expected one update on session 1, got %v", updates)
	}
	if len(api.named("create")) != 0 {
		t.Fatalf("update mode must never call create")
	}
	if rec.events[len(rec.events)-2] != "notify:Session updated !" {
		t.Fatalf("expected update notification, got %v", rec.events)
	}
}

func TestValidationBlocksSubmission(t *testing.T) {
	api := &fakeSessionAPI{}
	rec := &recorder{}
	form := NewSessionForm(loggedInStore(1, true), api, rec, rec, 0)
	form.Load(context.Background())

	cases := map[string]FormValues{
		"name":        {Name: "", Date: "2026-01-15", TeacherID: 1, Description: "x"},
		"date":        {Name: "x", Date: "not-a-date", TeacherID: 1, Description: "x"},
		"teacher_id":  {Name: "x", Date: "2026-01-15", TeacherID: 0, Description: "x"},
		"description": {Name: "x", Date: "2026-01-15", TeacherID: 1, Description: ""},
	}
	for field, values := range cases {
		err := form.Submit(context.Background(), values)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("%s: expected ValidationError, got %v", field, err)
		}
		if validationErr.Field != field {
			t.Fatalf("expected invalid field %s, got %s", field, validationErr.Field)
		}
	}
	if len(api.calls) != 0 {
		t.Fatalf("validation failures must block every network call, got %v", api.calls)
	}
}

func TestSubmitFailureStaysOnForm(t *testing.T) {
	api := &fakeSessionAPI{createErr: errTest}
	rec := &recorder{}
	form := NewSessionForm(loggedInStore(1, true), api, rec, rec, 0)
	form.Load(context.Background())

	if err := form.Submit(context.Background(), validValues()); err == nil {
		t.Fatalf("expected error")
	}
	for _, event := range rec.events {
		if event == "navigate:/sessions" {
			t.Fatalf("failed submit must not navigate, got %v", rec.events)
		}
	}
	if len(rec.events) != 1 || rec.events[0] != "notify:"+genericErrorMessage {
		t.Fatalf("expected error notification, got %v", rec.events)
	}
}
