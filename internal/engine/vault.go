package engine

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// vault 资金托管，跟踪每个项目的在管金额和每个地址的已付金额
// 不变量：custody = raised - withdrawn - refunded
type vault struct {
	custody map[uint64]*big.Int
	payouts map[common.Address]*big.Int
}

func newVault() *vault {
	return &vault{
		custody: make(map[uint64]*big.Int),
		payouts: make(map[common.Address]*big.Int),
	}
}

// deposit 贡献入账
func (v *vault) deposit(projectID uint64, amount *big.Int) {
	balance, ok := v.custody[projectID]
	if !ok {
		balance = new(big.Int)
		v.custody[projectID] = balance
	}
	balance.Add(balance, amount)
}

// release 出账并记入收款方，提款和退款共用
func (v *vault) release(projectID uint64, to common.Address, amount *big.Int) {
	balance, ok := v.custody[projectID]
	if !ok {
		balance = new(big.Int)
		v.custody[projectID] = balance
	}
	balance.Sub(balance, amount)

	paid, ok := v.payouts[to]
	if !ok {
		paid = new(big.Int)
		v.payouts[to] = paid
	}
	paid.Add(paid, amount)
}

// custodyOf 项目在管金额副本
func (v *vault) custodyOf(projectID uint64) *big.Int {
	if balance, ok := v.custody[projectID]; ok {
		return new(big.Int).Set(balance)
	}
	return new(big.Int)
}

// payoutOf 地址累计收款副本
func (v *vault) payoutOf(to common.Address) *big.Int {
	if paid, ok := v.payouts[to]; ok {
		return new(big.Int).Set(paid)
	}
	return new(big.Int)
}
