package store_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/amirasaad/ledger/pkg/store"
)

// FuzzTransfer checks that a transfer either moves exactly amount or changes
// nothing, and that no balance ever goes negative.
func FuzzTransfer(f *testing.F) {
	f.Add("100.00", "50.00", "20.00")
	f.Add("100.00", "50.00", "120.00")
	f.Add("0", "0", "0")
	f.Add("1.5", "2", "-1")
	f.Fuzz(func(t *testing.T, a, b, amt string) {
		initialA, errA := money.Parse(a)
		initialB, errB := money.Parse(b)
		amount, errAmt := money.Parse(amt)
		if errA != nil || errB != nil || errAmt != nil {
			t.Skip()
		}

		s := store.NewMemoryStore()
		if _, err := s.Create("a", initialA); err != nil {
			t.Skip()
		}
		if _, err := s.Create("b", initialB); err != nil {
			t.Skip()
		}

		_, _, err := s.Transfer("a", "b", amount)

		accA, _ := s.Lookup("a")
		accB, _ := s.Lookup("b")
		if accA.Balance().IsNegative() || accB.Balance().IsNegative() {
			t.Fatalf("negative balance after transfer: a=%s b=%s", accA.Balance(), accB.Balance())
		}
		if total := accA.Balance().Add(accB.Balance()); !total.Equal(initialA.Add(initialB)) {
			t.Fatalf("total changed: %s != %s", total, initialA.Add(initialB))
		}
		if err != nil && (!accA.Balance().Equal(initialA) || !accB.Balance().Equal(initialB)) {
			t.Fatalf("failed transfer mutated balances: %v", err)
		}
		if err == nil && !accA.Balance().Equal(initialA.Sub(amount)) {
			t.Fatalf("source not debited by %s", amount)
		}
	})
}
