package engine

import (
	"math/big"
	"testing"
)

func TestLedgerCreditAccumulates(t *testing.T) {
	l := newLedger()

	l.credit(1, contributor1, big.NewInt(3))
	l.credit(1, contributor1, big.NewInt(4))
	l.credit(1, contributor2, big.NewInt(5))
	l.credit(2, contributor1, big.NewInt(7))

	if got := l.balance(1, contributor1); got.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("balance(1, c1) = %s, want 7", got)
	}
	if got := l.balance(1, contributor2); got.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("balance(1, c2) = %s, want 5", got)
	}
	if got := l.balance(2, contributor1); got.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("balance(2, c1) = %s, want 7", got)
	}
	if got := l.balance(2, contributor2); got.Sign() != 0 {
		t.Errorf("balance(2, c2) = %s, want 0", got)
	}
}

func TestLedgerClear(t *testing.T) {
	l := newLedger()
	l.credit(1, contributor1, big.NewInt(9))

	previous := l.clear(1, contributor1)
	if previous.Cmp(big.NewInt(9)) != 0 {
		t.Errorf("clear returned %s, want 9", previous)
	}
	if got := l.balance(1, contributor1); got.Sign() != 0 {
		t.Errorf("balance after clear = %s, want 0", got)
	}

	// 再次清零返回 0
	if again := l.clear(1, contributor1); again.Sign() != 0 {
		t.Errorf("second clear returned %s, want 0", again)
	}

	// 清零后重新贡献可再次入账
	l.credit(1, contributor1, big.NewInt(2))
	if got := l.balance(1, contributor1); got.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("balance after re-credit = %s, want 2", got)
	}
}

func TestLedgerClearUnknown(t *testing.T) {
	l := newLedger()
	if got := l.clear(1, contributor1); got.Sign() != 0 {
		t.Errorf("clear on empty ledger = %s, want 0", got)
	}
}

func TestLedgerBalanceIsCopy(t *testing.T) {
	l := newLedger()
	l.credit(1, contributor1, big.NewInt(5))

	got := l.balance(1, contributor1)
	got.SetInt64(100)

	if fresh := l.balance(1, contributor1); fresh.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("mutating a returned balance leaked into the ledger: %s", fresh)
	}
}
