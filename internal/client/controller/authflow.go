package controller

import (
	"context"

	"github.com/hisarandre/P5-yoga-app/internal/client/gateway"
	"github.com/hisarandre/P5-yoga-app/internal/client/session"
)

// Auth drives the login and register views. A failed login sets a local flag
// the view reads to show a generic message; server detail is never echoed.
type Auth struct {
	store *session.Store
	api   authAPI
	nav   Navigator

	onError bool
}

func NewAuth(store *session.Store, api authAPI, nav Navigator) *Auth {
	return &Auth{store: store, api: api, nav: nav}
}

func (a *Auth) OnError() bool {
	return a.onError
}

func (a *Auth) Login(ctx context.Context, email, password string) {
	info, err := a.api.Login(ctx, gateway.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.onError = true
		return
	}
	a.onError = false
	a.store.LogIn(info)
	a.nav.NavigateTo("/sessions")
}

func (a *Auth) Register(ctx context.Context, req gateway.RegisterRequest) {
	if err := a.api.Register(ctx, req); err != nil {
		a.onError = true
		return
	}
	a.onError = false
	a.nav.NavigateTo("/login")
}
