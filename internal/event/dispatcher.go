package event

import (
	"github.com/panjf2000/ants/v2"
	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/logger"
)

// Processor 通知处理器
type Processor interface {
	Name() string
	Process(n engine.Notification) error
}

// Dispatcher 通知分发器，实现 engine.Notifier
// 通过协程池异步分发，发出即忘，处理失败只记日志不回传引擎
// 池大小为 1 时处理顺序与引擎提交顺序一致，镜像依赖这一点
type Dispatcher struct {
	pool       *ants.Pool
	processors []Processor
}

// NewDispatcher 创建通知分发器
func NewDispatcher(poolSize int, processors ...Processor) (*Dispatcher, error) {
	if poolSize <= 0 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	return &Dispatcher{
		pool:       pool,
		processors: processors,
	}, nil
}

// Notify 接收引擎通知并提交到协程池
func (d *Dispatcher) Notify(n engine.Notification) {
	if err := d.pool.Submit(func() { d.dispatch(n) }); err != nil {
		logger.Error("Failed to submit notification %s for project %d: %v", n.Type, n.ProjectID, err)
	}
}

// dispatch 依次调用所有处理器
func (d *Dispatcher) dispatch(n engine.Notification) {
	for _, p := range d.processors {
		if err := p.Process(n); err != nil {
			logger.Error("Processor %s failed on %s event: %v", p.Name(), n.Type, err)
		}
	}
}

// Close 释放协程池，停止接收新通知
func (d *Dispatcher) Close() {
	d.pool.Release()
}
