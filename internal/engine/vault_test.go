package engine

import (
	"math/big"
	"testing"
)

func TestVaultDepositRelease(t *testing.T) {
	v := newVault()

	v.deposit(1, big.NewInt(10))
	v.deposit(1, big.NewInt(5))
	v.release(1, contributor1, big.NewInt(6))

	if got := v.custodyOf(1); got.Cmp(big.NewInt(9)) != 0 {
		t.Errorf("custody = %s, want 9", got)
	}
	if got := v.payoutOf(contributor1); got.Cmp(big.NewInt(6)) != 0 {
		t.Errorf("payout = %s, want 6", got)
	}
	if got := v.custodyOf(2); got.Sign() != 0 {
		t.Errorf("untouched project custody = %s, want 0", got)
	}
}

func TestVaultReleaseWithoutDeposit(t *testing.T) {
	v := newVault()

	// 未入账的项目出账时初始化条目，不崩溃
	v.release(1, contributor1, big.NewInt(3))

	if got := v.custodyOf(1); got.Cmp(big.NewInt(-3)) != 0 {
		t.Errorf("custody = %s, want -3", got)
	}
	if got := v.payoutOf(contributor1); got.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("payout = %s, want 3", got)
	}
}

func TestVaultCustodyIsCopy(t *testing.T) {
	v := newVault()
	v.deposit(1, big.NewInt(5))

	got := v.custodyOf(1)
	got.SetInt64(100)

	if fresh := v.custodyOf(1); fresh.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("mutating a returned custody leaked into the vault: %s", fresh)
	}
}
