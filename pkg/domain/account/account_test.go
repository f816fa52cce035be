package account_test

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func TestNewAccount(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	acc, err := account.New().
		WithOwner("alice").
		WithBalance(money.MustParse("100.00")).
		Build()
	require.NoError(err)
	assert.NotEqual(t, uuid.Nil, acc.ID(), "Account ID should not be empty")
	assert.Equal(t, account.Owner("alice"), acc.Owner())
	assert.Equal(t, "100.00", acc.Balance().String())
	assert.False(t, acc.CreatedAt().IsZero())
}

func TestBuild_Invariants(t *testing.T) {
	t.Parallel()

	t.Run("owner is required", func(t *testing.T) {
		_, err := account.New().Build()
		assert.ErrorIs(t, err, account.ErrInvalidOwner)
	})

	t.Run("blank owner", func(t *testing.T) {
		_, err := account.New().WithOwner("   ").Build()
		assert.ErrorIs(t, err, account.ErrInvalidOwner)
	})

	t.Run("negative balance", func(t *testing.T) {
		_, err := account.New().WithOwner("bob").WithBalance(money.MustParse("-0.01")).Build()
		assert.ErrorIs(t, err, account.ErrNegativeAmount)
	})

	t.Run("defaults to zero balance", func(t *testing.T) {
		acc, err := account.New().WithOwner("bob").Build()
		require.NoError(t, err)
		assert.True(t, acc.Balance().IsZero())
	})
}

func TestFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	orig, err := account.New().
		WithOwner("carol").
		WithBalance(money.MustParse("10.00")).
		WithCreatedAt(created).
		WithUpdatedAt(created).
		Build()
	require.NoError(t, err)

	later := created.Add(time.Hour)
	next, err := account.From(orig).
		WithBalance(money.MustParse("12.50")).
		WithUpdatedAt(later).
		Build()
	require.NoError(t, err)

	assert.Equal(t, orig.ID(), next.ID())
	assert.Equal(t, orig.Owner(), next.Owner())
	assert.Equal(t, created, next.CreatedAt())
	assert.Equal(t, later, next.UpdatedAt())
	assert.Equal(t, "12.50", next.Balance().String())
	assert.Equal(t, "10.00", orig.Balance().String(), "original snapshot must not change")
}

func TestValidateWithdraw(t *testing.T) {
	t.Parallel()
	acc, err := account.New().WithOwner("dave").WithBalance(money.MustParse("100.00")).Build()
	require.NoError(t, err)

	t.Run("successful withdrawal", func(t *testing.T) {
		assert.NoError(t, acc.ValidateWithdraw(money.MustParse("50.00")))
	})

	t.Run("whole balance", func(t *testing.T) {
		assert.NoError(t, acc.ValidateWithdraw(money.MustParse("100")))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		assert.ErrorIs(t, acc.ValidateWithdraw(money.MustParse("100.01")), account.ErrInsufficientFunds)
	})

	t.Run("negative amount", func(t *testing.T) {
		assert.ErrorIs(t, acc.ValidateWithdraw(money.MustParse("-1")), account.ErrNegativeAmount)
	})
}

func TestValidateTransfer(t *testing.T) {
	t.Parallel()
	src, err := account.New().WithOwner("erin").WithBalance(money.MustParse("100.00")).Build()
	require.NoError(t, err)
	dst, err := account.New().WithOwner("frank").Build()
	require.NoError(t, err)

	t.Run("successful transfer", func(t *testing.T) {
		assert.NoError(t, src.ValidateTransfer(dst, money.MustParse("20.00")))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		assert.ErrorIs(t, src.ValidateTransfer(dst, money.MustParse("120.00")), account.ErrInsufficientFunds)
	})

	t.Run("transfer to same account", func(t *testing.T) {
		assert.ErrorIs(t, src.ValidateTransfer(src, money.MustParse("1")), account.ErrCannotTransferToSameAccount)
	})
}
