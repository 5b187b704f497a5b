package humanize

import (
	"context"
	"math/rand/v2"
	"time"
)

// Rand 随机源,*rand.Rand 满足该接口。测试中使用固定种子以获得确定的轨迹
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand 创建PCG随机源,seed为0时使用运行时随机种子
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DelayRange 闭区间 [Min, Max] 的等待时间
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

func (dr DelayRange) sample(rng Rand) time.Duration {
	if dr.Max <= dr.Min {
		return dr.Min
	}
	return dr.Min + time.Duration(rng.Float64()*float64(dr.Max-dr.Min))
}

// uniform 返回 [lo, hi) 内的均匀分布值
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// intBetween 返回 [lo, hi] 内的整数
func intBetween(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// Sleeper 阻塞等待,用于塑造操作节奏
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// ContextSleeper 基于计时器的真实等待,ctx结束时提前返回
type ContextSleeper struct{}

func (ContextSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
