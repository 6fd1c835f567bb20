package engine

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ledger 贡献账本，按 (projectId, contributor) 记录当前在账金额
// 只做记账，资金托管由 vault 同步维护
type ledger struct {
	balances map[uint64]map[common.Address]*big.Int
}

func newLedger() *ledger {
	return &ledger{balances: make(map[uint64]map[common.Address]*big.Int)}
}

// credit 累加贡献金额
func (l *ledger) credit(projectID uint64, contributor common.Address, amount *big.Int) {
	entries, ok := l.balances[projectID]
	if !ok {
		entries = make(map[common.Address]*big.Int)
		l.balances[projectID] = entries
	}
	balance, ok := entries[contributor]
	if !ok {
		balance = new(big.Int)
		entries[contributor] = balance
	}
	balance.Add(balance, amount)
}

// balance 读取在账金额副本，未贡献返回 0
func (l *ledger) balance(projectID uint64, contributor common.Address) *big.Int {
	if entries, ok := l.balances[projectID]; ok {
		if balance, ok := entries[contributor]; ok {
			return new(big.Int).Set(balance)
		}
	}
	return new(big.Int)
}

// clear 原子读取并清零，返回清零前金额，退款路径专用
func (l *ledger) clear(projectID uint64, contributor common.Address) *big.Int {
	entries, ok := l.balances[projectID]
	if !ok {
		return new(big.Int)
	}
	balance, ok := entries[contributor]
	if !ok {
		return new(big.Int)
	}
	previous := new(big.Int).Set(balance)
	balance.SetInt64(0)
	return previous
}
