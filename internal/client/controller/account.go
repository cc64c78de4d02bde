package controller

import (
	"context"

	"github.com/hisarandre/P5-yoga-app/internal/client/session"
	"github.com/hisarandre/P5-yoga-app/internal/model"
)

// Account drives the "me" view: show the current account, and let non-admin
// users delete it.
type Account struct {
	store    *session.Store
	users    userAPI
	notifier Notifier
	nav      Navigator

	selfID int64
	user   model.User
	loaded bool
}

func NewAccount(store *session.Store, users userAPI, notifier Notifier, nav Navigator) *Account {
	info, _ := store.Information()
	return &Account{
		store:    store,
		users:    users,
		notifier: notifier,
		nav:      nav,
		selfID:   info.ID,
	}
}

func (a *Account) Load(ctx context.Context) {
	user, err := a.users.Detail(ctx, a.selfID)
	if err != nil {
		a.notifier.Notify(genericErrorMessage)
		return
	}
	a.user = user
	a.loaded = true
}

func (a *Account) User() (model.User, bool) {
	return a.user, a.loaded
}

// CanDelete hides the delete-account control for admin accounts.
func (a *Account) CanDelete() bool {
	return a.loaded && !a.user.Admin
}

// DeleteSelf removes the account. The confirmation is dispatched before the
// logout so it is rendered while the identity still exists; navigation to the
// root comes last.
func (a *Account) DeleteSelf(ctx context.Context) {
	if err := a.users.Delete(ctx, a.selfID); err != nil {
		a.notifier.Notify(genericErrorMessage)
		return
	}
	a.notifier.Notify("Your account has been deleted !")
	a.store.LogOut()
	a.nav.NavigateTo("/")
}
