package account

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when the owner has no account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned when creating a second account for the same owner.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrInsufficientFunds is returned when an account has insufficient funds for a withdrawal or transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNegativeAmount is returned when an initial balance or transaction amount is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidOwner is returned when the owner identity is empty.
	ErrInvalidOwner = errors.New("invalid owner")

	// ErrCannotTransferToSameAccount is returned when a transfer names the same owner on both sides.
	ErrCannotTransferToSameAccount = errors.New("cannot transfer to same account")
)

// Owner identifies an account holder. Owners compare by value, so two
// handles carrying the same name refer to the same account.
type Owner string

// Validate returns ErrInvalidOwner for blank owners.
func (o Owner) Validate() error {
	if strings.TrimSpace(string(o)) == "" {
		return ErrInvalidOwner
	}
	return nil
}

// String implements fmt.Stringer.
func (o Owner) String() string {
	return string(o)
}

// Account is an immutable snapshot of an owner's balance at a point in time.
//
// Invariants:
//   - An account always has a valid owner.
//   - The balance is never negative.
//   - ID and CreatedAt never change across snapshots of the same account.
type Account struct {
	id        uuid.UUID
	owner     Owner
	balance   money.Money
	createdAt time.Time
	updatedAt time.Time
}

// ID returns the identifier assigned when the account was opened.
func (a Account) ID() uuid.UUID { return a.id }

// Owner returns the account holder.
func (a Account) Owner() Owner { return a.owner }

// Balance returns the balance held at the time of this snapshot.
func (a Account) Balance() money.Money { return a.balance }

// CreatedAt returns when the account was opened.
func (a Account) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns when this snapshot was produced.
func (a Account) UpdatedAt() time.Time { return a.updatedAt }

// Builder provides a fluent API for constructing Account values.
// Replacement snapshots are built from an existing account with From.
type Builder struct {
	id        uuid.UUID
	owner     Owner
	balance   money.Money
	createdAt time.Time
	updatedAt time.Time
}

// New creates a new Builder with a fresh ID, a zero balance and the current time.
func New() *Builder {
	now := time.Now()
	return &Builder{
		id:        uuid.New(),
		balance:   money.Zero,
		createdAt: now,
		updatedAt: now,
	}
}

// From starts a Builder that copies every field of a, so the result is a
// replacement snapshot of the same account.
func From(a Account) *Builder {
	return &Builder{
		id:        a.id,
		owner:     a.owner,
		balance:   a.balance,
		createdAt: a.createdAt,
		updatedAt: a.updatedAt,
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithOwner sets the owner. This is a mandatory field.
func (b *Builder) WithOwner(owner Owner) *Builder {
	b.owner = owner
	return b
}

// WithBalance sets the balance.
func (b *Builder) WithBalance(balance money.Money) *Builder {
	b.balance = balance
	return b
}

// WithCreatedAt sets the creation timestamp.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the timestamp of the snapshot.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates the invariants and returns the Account.
func (b *Builder) Build() (Account, error) {
	if err := b.owner.Validate(); err != nil {
		return Account{}, err
	}
	if b.balance.IsNegative() {
		return Account{}, ErrNegativeAmount
	}
	return Account{
		id:        b.id,
		owner:     b.owner,
		balance:   b.balance,
		createdAt: b.createdAt,
		updatedAt: b.updatedAt,
	}, nil
}

// ValidateAmount rejects negative transaction amounts.
func ValidateAmount(amount money.Money) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// ValidateWithdraw checks that amount can be taken from the account
// without driving the balance below zero.
func (a Account) ValidateWithdraw(amount money.Money) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidateTransfer ensures that a funds transfer from this account to dest is valid.
func (a Account) ValidateTransfer(dest Account, amount money.Money) error {
	if a.owner == dest.owner {
		return ErrCannotTransferToSameAccount
	}
	return a.ValidateWithdraw(amount)
}
