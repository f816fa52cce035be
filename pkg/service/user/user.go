// Package user provides the owner-facing facade over an account store.
//
// A User is a named handle bound to a store. Account handles returned by it
// remember the last snapshot they observed and forward every operation to
// the store, which remains the only source of truth.
package user

import (
	"fmt"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/amirasaad/ledger/pkg/store"
)

// User is an account holder bound to a store.
type User struct {
	name  account.Owner
	store store.AccountStore
}

// New creates a User handle. It does not touch the store.
func New(name account.Owner, s store.AccountStore) *User {
	return &User{name: name, store: s}
}

// Name returns the owner identity used as the store key.
func (u *User) Name() account.Owner {
	return u.name
}

// CreateAccount opens the user's account with an initial balance.
func (u *User) CreateAccount(initial money.Money) (*Account, error) {
	snap, err := u.store.Create(u.name, initial)
	if err != nil {
		return nil, err
	}
	return &Account{user: u, last: snap}, nil
}

// Account returns a handle on the user's current account.
func (u *User) Account() (*Account, error) {
	snap, err := u.store.Lookup(u.name)
	if err != nil {
		return nil, err
	}
	return &Account{user: u, last: snap}, nil
}

// Account is a handle on a user's account carrying the last snapshot it saw.
type Account struct {
	user *User

	mu   sync.Mutex
	last account.Account
}

// User returns the account holder.
func (a *Account) User() *User {
	return a.user
}

// Amount returns the last-known balance.
func (a *Account) Amount() money.Money {
	return a.Snapshot().Balance()
}

// Snapshot returns the last-known account snapshot.
func (a *Account) Snapshot() account.Account {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

// Deposit adds amount and returns the refreshed handle.
func (a *Account) Deposit(amount money.Money) (*Account, error) {
	if _, err := a.user.store.Deposit(a.user.name, amount); err != nil {
		return nil, err
	}
	return a.refresh()
}

// Withdraw takes amount and returns the refreshed handle.
func (a *Account) Withdraw(amount money.Money) (*Account, error) {
	if _, err := a.user.store.Withdraw(a.user.name, amount); err != nil {
		return nil, err
	}
	return a.refresh()
}

// Transfer moves amount to another user's account and returns the
// refreshed handle of the sender. A nil recipient is rejected with
// account.ErrInvalidOwner.
func (a *Account) Transfer(to *User, amount money.Money) (*Account, error) {
	if to == nil {
		return nil, fmt.Errorf("transfer to nil user: %w", account.ErrInvalidOwner)
	}
	if _, _, err := a.user.store.Transfer(a.user.name, to.name, amount); err != nil {
		return nil, err
	}
	return a.refresh()
}

// refresh reloads the snapshot from the store.
func (a *Account) refresh() (*Account, error) {
	snap, err := a.user.store.Lookup(a.user.name)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.last = snap
	a.mu.Unlock()
	return a, nil
}
