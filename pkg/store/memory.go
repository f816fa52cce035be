package store

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
)

// MemoryStore is a process-lifetime AccountStore. A single RWMutex guards
// the map; every mutation, including both legs of a transfer, runs inside
// one write critical section.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[account.Owner]account.Account
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithLogger sets the logger used for operation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *MemoryStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used to stamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore returns an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		accounts: make(map[account.Owner]account.Account),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ AccountStore = (*MemoryStore)(nil)

// Lookup returns the current snapshot for owner.
func (s *MemoryStore) Lookup(owner account.Owner) (account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(owner)
}

// Create opens an account for owner. The existing account is left untouched
// when owner already has one.
func (s *MemoryStore) Create(owner account.Owner, initial money.Money) (account.Account, error) {
	if err := owner.Validate(); err != nil {
		return account.Account{}, err
	}
	if err := account.ValidateAmount(initial); err != nil {
		return account.Account{}, fmt.Errorf("create %q: %w", owner, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[owner]; ok {
		s.logger.Debug("Create rejected", "owner", owner, "error", account.ErrAccountAlreadyExists)
		return account.Account{}, fmt.Errorf("create %q: %w", owner, account.ErrAccountAlreadyExists)
	}
	now := s.now()
	acc, err := account.New().
		WithOwner(owner).
		WithBalance(initial).
		WithCreatedAt(now).
		WithUpdatedAt(now).
		Build()
	if err != nil {
		return account.Account{}, fmt.Errorf("create %q: %w", owner, err)
	}
	s.accounts[owner] = acc
	s.logger.Debug("Account created", "owner", owner, "id", acc.ID(), "balance", acc.Balance().String())
	return acc, nil
}

// Deposit adds amount to the owner's balance.
func (s *MemoryStore) Deposit(owner account.Owner, amount money.Money) (account.Account, error) {
	if err := account.ValidateAmount(amount); err != nil {
		return account.Account{}, fmt.Errorf("deposit %q: %w", owner, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.get(owner)
	if err != nil {
		return account.Account{}, err
	}
	updated, err := s.replace(acc, acc.Balance().Add(amount))
	if err != nil {
		return account.Account{}, fmt.Errorf("deposit %q: %w", owner, err)
	}
	s.logger.Debug("Deposit applied", "owner", owner, "amount", amount.String(), "balance", updated.Balance().String())
	return updated, nil
}

// Withdraw takes amount from the owner's balance.
func (s *MemoryStore) Withdraw(owner account.Owner, amount money.Money) (account.Account, error) {
	if err := account.ValidateAmount(amount); err != nil {
		return account.Account{}, fmt.Errorf("withdraw %q: %w", owner, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.get(owner)
	if err != nil {
		return account.Account{}, err
	}
	if err := acc.ValidateWithdraw(amount); err != nil {
		s.logger.Debug("Withdraw rejected", "owner", owner, "amount", amount.String(), "error", err)
		return account.Account{}, fmt.Errorf("withdraw %q: %w", owner, err)
	}
	updated, err := s.replace(acc, acc.Balance().Sub(amount))
	if err != nil {
		return account.Account{}, fmt.Errorf("withdraw %q: %w", owner, err)
	}
	s.logger.Debug("Withdraw applied", "owner", owner, "amount", amount.String(), "balance", updated.Balance().String())
	return updated, nil
}

// Transfer moves amount from one owner to another. Both accounts are
// resolved and the transfer validated before either entry is replaced, so a
// failure never leaves the source debited without the matching credit.
func (s *MemoryStore) Transfer(from, to account.Owner, amount money.Money) (source, dest account.Account, err error) {
	if err = account.ValidateAmount(amount); err != nil {
		return account.Account{}, account.Account{}, fmt.Errorf("transfer %q -> %q: %w", from, to, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := s.get(from)
	if err != nil {
		return account.Account{}, account.Account{}, err
	}
	dst, err := s.get(to)
	if err != nil {
		return account.Account{}, account.Account{}, err
	}
	if err = src.ValidateTransfer(dst, amount); err != nil {
		s.logger.Debug("Transfer rejected", "from", from, "to", to, "amount", amount.String(), "error", err)
		return account.Account{}, account.Account{}, fmt.Errorf("transfer %q -> %q: %w", from, to, err)
	}

	// build both snapshots first so nothing is written if either fails
	now := s.now()
	source, err = account.From(src).WithBalance(src.Balance().Sub(amount)).WithUpdatedAt(now).Build()
	if err != nil {
		return account.Account{}, account.Account{}, fmt.Errorf("transfer %q -> %q: %w", from, to, err)
	}
	dest, err = account.From(dst).WithBalance(dst.Balance().Add(amount)).WithUpdatedAt(now).Build()
	if err != nil {
		return account.Account{}, account.Account{}, fmt.Errorf("transfer %q -> %q: %w", from, to, err)
	}
	s.accounts[from] = source
	s.accounts[to] = dest

	s.logger.Debug("Transfer applied",
		"from", from,
		"to", to,
		"amount", amount.String(),
		"from_balance", source.Balance().String(),
		"to_balance", dest.Balance().String(),
	)
	return source, dest, nil
}

// Len returns the number of accounts held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// Owners returns every owner with an account, sorted.
func (s *MemoryStore) Owners() []account.Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owners := make([]account.Owner, 0, len(s.accounts))
	for owner := range s.accounts {
		owners = append(owners, owner)
	}
	slices.Sort(owners)
	return owners
}

// get must be called with s.mu held.
func (s *MemoryStore) get(owner account.Owner) (account.Account, error) {
	acc, ok := s.accounts[owner]
	if !ok {
		return account.Account{}, fmt.Errorf("%q: %w", owner, account.ErrAccountNotFound)
	}
	return acc, nil
}

// replace must be called with s.mu held for writing.
func (s *MemoryStore) replace(acc account.Account, balance money.Money) (account.Account, error) {
	updated, err := account.From(acc).WithBalance(balance).WithUpdatedAt(s.now()).Build()
	if err != nil {
		return account.Account{}, err
	}
	s.accounts[acc.Owner()] = updated
	return updated, nil
}
