package engine

import (
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Policy 治理策略
type Policy struct {
	// ApprovalPercent 释放资金所需投票权重占已筹金额的百分比阈值，
	// voteCount*100 > raised*ApprovalPercent 时放行，0 表示不设门槛
	ApprovalPercent int
}

// Launchpad 众筹托管引擎，所有操作串行执行、整体成功或整体失败
// 项目和提款请求的编号从 1 开始，进程启动时为空，不会重置
type Launchpad struct {
	mu       sync.Mutex
	clock    Clock
	notifier Notifier
	policy   Policy

	projects []*project
	requests []*withdrawRequest
	ledger   *ledger
	vault    *vault
	voters   map[uint64]map[common.Address]bool
}

// NewLaunchpad 创建引擎，clock 或 notifier 传 nil 时使用默认值
func NewLaunchpad(policy Policy, clock Clock, notifier Notifier) *Launchpad {
	if clock == nil {
		clock = SystemClock()
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Launchpad{
		clock:    clock,
		notifier: notifier,
		policy:   policy,
		ledger:   newLedger(),
		vault:    newVault(),
		voters:   make(map[uint64]map[common.Address]bool),
	}
}

// SetNotifier 设置通知接收方
// 分发器的处理器持有引擎引用，先建引擎再回填通知方
func (l *Launchpad) SetNotifier(n Notifier) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n == nil {
		n = noopNotifier{}
	}
	l.notifier = n
}

// CreateProject 创建项目，截止时间为当前时间加 duration，创建后不再变化
func (l *Launchpad) CreateProject(creator common.Address, title, description string, goalAmount *big.Int, duration time.Duration) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if goalAmount == nil || goalAmount.Sign() <= 0 {
		return 0, ErrInvalidGoal
	}
	if duration <= 0 {
		return 0, ErrInvalidDuration
	}

	now := l.clock.Now()
	p := &project{
		id:              uint64(len(l.projects) + 1),
		creator:         creator,
		title:           title,
		description:     description,
		goalAmount:      new(big.Int).Set(goalAmount),
		deadline:        now.Add(duration),
		raisedAmount:    new(big.Int),
		withdrawnAmount: new(big.Int),
	}
	l.projects = append(l.projects, p)

	l.notifier.Notify(Notification{
		Type:       EventProjectCreated,
		ProjectID:  p.id,
		Actor:      creator,
		Amount:     new(big.Int).Set(goalAmount),
		OccurredAt: now,
	})
	return p.id, nil
}

// GetProjectDetails 获取项目详情，状态在读取时推导
func (l *Launchpad) GetProjectDetails(projectID uint64) (Project, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.findProject(projectID)
	if err != nil {
		return Project{}, err
	}
	return p.snapshot(l.clock.Now()), nil
}

// ProjectCount 已创建项目数
func (l *Launchpad) ProjectCount() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint64(len(l.projects))
}

// Contribute 向进行中的项目贡献资金
// 达标后的项目拒绝（NotActive），过期未达标的项目拒绝（Expired），
// 越过目标线的那一笔全额接受
func (l *Launchpad) Contribute(projectID uint64, contributor common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.findProject(projectID)
	if err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	now := l.clock.Now()
	switch p.deriveStatus(now) {
	case StatusSuccessful:
		return ErrNotActive
	case StatusFailed:
		return ErrExpired
	}

	l.ledger.credit(projectID, contributor, amount)
	p.raisedAmount.Add(p.raisedAmount, amount)
	l.vault.deposit(projectID, amount)

	l.notifier.Notify(Notification{
		Type:       EventContributed,
		ProjectID:  projectID,
		Actor:      contributor,
		Amount:     new(big.Int).Set(amount),
		OccurredAt: now,
	})
	return nil
}

// ClaimRefund 项目失败后取回贡献，账本清零和出账是同一原子步骤
// raisedAmount 保留历史累计值，不随退款回减
func (l *Launchpad) ClaimRefund(projectID uint64, claimant common.Address) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.findProject(projectID)
	if err != nil {
		return nil, err
	}

	now := l.clock.Now()
	if p.deriveStatus(now) != StatusFailed {
		return nil, ErrNotFailed
	}
	if l.ledger.balance(projectID, claimant).Sign() == 0 {
		return nil, ErrNoContribution
	}

	amount := l.ledger.clear(projectID, claimant)
	l.vault.release(projectID, claimant, amount)

	l.notifier.Notify(Notification{
		Type:       EventRefunded,
		ProjectID:  projectID,
		Actor:      claimant,
		Amount:     new(big.Int).Set(amount),
		OccurredAt: now,
	})
	return amount, nil
}

// CreateWithdrawRequest 创建提款请求，仅限项目创建者且项目已成功，
// 金额不得超过未释放余额
func (l *Launchpad) CreateWithdrawRequest(projectID uint64, caller common.Address, description string, amount *big.Int) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.findProject(projectID)
	if err != nil {
		return 0, err
	}
	if caller != p.creator {
		return 0, ErrNotCreator
	}
	if p.deriveStatus(l.clock.Now()) != StatusSuccessful {
		return 0, ErrNotSuccessful
	}
	if amount == nil || amount.Sign() <= 0 {
		return 0, ErrInvalidAmount
	}
	available := new(big.Int).Sub(p.raisedAmount, p.withdrawnAmount)
	if amount.Cmp(available) > 0 {
		return 0, ErrInsufficientBalance
	}

	r := &withdrawRequest{
		id:          uint64(len(l.requests) + 1),
		projectID:   projectID,
		creator:     caller,
		description: description,
		amount:      new(big.Int).Set(amount),
		voteCount:   new(big.Int),
	}
	l.requests = append(l.requests, r)

	l.notifier.Notify(Notification{
		Type:       EventWithdrawRequestCreated,
		ProjectID:  projectID,
		RequestID:  r.id,
		Actor:      caller,
		Amount:     new(big.Int).Set(amount),
		OccurredAt: l.clock.Now(),
	})
	return r.id, nil
}

// GetWithdrawRequest 获取提款请求详情
func (l *Launchpad) GetWithdrawRequest(requestID uint64) (WithdrawRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, err := l.findRequest(requestID)
	if err != nil {
		return WithdrawRequest{}, err
	}
	return r.snapshot(), nil
}

// WithdrawRequestCount 已创建提款请求数
func (l *Launchpad) WithdrawRequestCount() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint64(len(l.requests))
}

// VoteWithdrawRequest 为提款请求投票，权重为投票人当前在账贡献全额
// 每个贡献人对同一项目只能投一次，跨该项目的所有请求共享这个标记
func (l *Launchpad) VoteWithdrawRequest(requestID uint64, voter common.Address) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, err := l.findRequest(requestID)
	if err != nil {
		return nil, err
	}

	weight := l.ledger.balance(r.projectID, voter)
	if weight.Sign() == 0 {
		return nil, ErrNotContributor
	}
	if l.voters[r.projectID][voter] {
		return nil, ErrAlreadyVoted
	}

	if l.voters[r.projectID] == nil {
		l.voters[r.projectID] = make(map[common.Address]bool)
	}
	l.voters[r.projectID][voter] = true
	r.voteCount.Add(r.voteCount, weight)

	l.notifier.Notify(Notification{
		Type:       EventVoted,
		ProjectID:  r.projectID,
		RequestID:  requestID,
		Actor:      voter,
		Amount:     new(big.Int).Set(weight),
		OccurredAt: l.clock.Now(),
	})
	return weight, nil
}

// HasVoted 查询贡献人是否已对项目投票
func (l *Launchpad) HasVoted(projectID uint64, voter common.Address) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.voters[projectID][voter]
}

// ReleaseWithdrawal 释放提款请求的资金给项目创建者
// 投票权重须满足治理策略阈值，每个请求只能释放一次，
// 释放总额不得超过 raised - withdrawn
func (l *Launchpad) ReleaseWithdrawal(requestID uint64, caller common.Address) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, err := l.findRequest(requestID)
	if err != nil {
		return nil, err
	}
	p, err := l.findProject(r.projectID)
	if err != nil {
		return nil, err
	}
	if caller != p.creator {
		return nil, ErrNotCreator
	}
	if r.isWithdrawn {
		return nil, ErrAlreadyWithdrawn
	}
	if !l.approved(r, p) {
		return nil, ErrInsufficientVotes
	}
	// 多个请求可共存，可用余额在释放时再校验一次
	available := new(big.Int).Sub(p.raisedAmount, p.withdrawnAmount)
	if r.amount.Cmp(available) > 0 {
		return nil, ErrInsufficientBalance
	}

	r.isWithdrawn = true
	p.withdrawnAmount.Add(p.withdrawnAmount, r.amount)
	l.vault.release(r.projectID, p.creator, r.amount)

	l.notifier.Notify(Notification{
		Type:       EventWithdrawn,
		ProjectID:  r.projectID,
		RequestID:  requestID,
		Actor:      p.creator,
		Amount:     new(big.Int).Set(r.amount),
		OccurredAt: l.clock.Now(),
	})
	return new(big.Int).Set(r.amount), nil
}

// ContributionOf 查询贡献人在项目的在账金额
func (l *Launchpad) ContributionOf(projectID uint64, contributor common.Address) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.findProject(projectID); err != nil {
		return nil, err
	}
	return l.ledger.balance(projectID, contributor), nil
}

// CustodyOf 查询项目当前在管金额
func (l *Launchpad) CustodyOf(projectID uint64) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.findProject(projectID); err != nil {
		return nil, err
	}
	return l.vault.custodyOf(projectID), nil
}

// PayoutOf 查询地址累计收到的释放资金（提款和退款）
func (l *Launchpad) PayoutOf(addr common.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.vault.payoutOf(addr)
}

// approved 判断投票权重是否满足释放阈值
func (l *Launchpad) approved(r *withdrawRequest, p *project) bool {
	if l.policy.ApprovalPercent <= 0 {
		return true
	}
	// voteCount*100 > raised*percent
	lhs := new(big.Int).Mul(r.voteCount, big.NewInt(100))
	rhs := new(big.Int).Mul(p.raisedAmount, big.NewInt(int64(l.policy.ApprovalPercent)))
	return lhs.Cmp(rhs) > 0
}

func (l *Launchpad) findProject(projectID uint64) (*project, error) {
	if projectID == 0 || projectID > uint64(len(l.projects)) {
		return nil, ErrProjectNotFound
	}
	return l.projects[projectID-1], nil
}

func (l *Launchpad) findRequest(requestID uint64) (*withdrawRequest, error) {
	if requestID == 0 || requestID > uint64(len(l.requests)) {
		return nil, ErrRequestNotFound
	}
	return l.requests[requestID-1], nil
}
