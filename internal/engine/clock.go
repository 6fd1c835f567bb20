package engine

import "time"

// Clock 时间源，状态推导依赖注入的时钟以便测试
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock 返回系统时钟
func SystemClock() Clock {
	return systemClock{}
}
