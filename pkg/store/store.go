// Package store owns account state. It maps each Owner to the current
// Account snapshot and implements every mutating ledger operation.
//
// All operations are synchronous and in-memory. Errors are the sentinels of
// the account package, wrapped with the owner involved; match them with
// errors.Is.
package store

import (
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
)

// AccountStore defines the ledger operations over owner accounts.
type AccountStore interface {
	// Lookup returns the current snapshot for owner.
	Lookup(owner account.Owner) (account.Account, error)

	// Create opens an account for owner with the given initial balance.
	Create(owner account.Owner, initial money.Money) (account.Account, error)

	// Deposit adds amount to the owner's balance.
	Deposit(owner account.Owner, amount money.Money) (account.Account, error)

	// Withdraw takes amount from the owner's balance. The store is left
	// untouched when funds are insufficient.
	Withdraw(owner account.Owner, amount money.Money) (account.Account, error)

	// Transfer moves amount from one owner to another. Either both accounts
	// are updated or neither is. A transfer where from and to are the same
	// owner is rejected with account.ErrCannotTransferToSameAccount and
	// leaves the balance unchanged; it is not treated as a withdraw followed
	// by a deposit.
	Transfer(from, to account.Owner, amount money.Money) (source, dest account.Account, err error)
}
