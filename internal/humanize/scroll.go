package humanize

import (
	"context"
	"fmt"
	"time"
)

const (
	minScrollCount = 4
	maxScrollCount = 8
	startUpChance  = 0.2
	flipChance     = 0.15
	readingChance  = 0.3
)

// 首尾滚动较短,中间较长
var (
	edgeAmount     = [2]int{150, 300}
	interiorAmount = [2]int{300, 600}
	readingPause   = DelayRange{Min: time.Second, Max: 2500 * time.Millisecond}
)

// ScrollStep 一次滚轮操作,Amount为正向下,为负向上
type ScrollStep struct {
	Amount int
	Delay  time.Duration
}

// ScrollParams 滚动序列参数
type ScrollParams struct {
	// Count <= 0 时随机取 [4, 8]
	Count     int
	BaseDelay DelayRange
}

// DefaultScrollParams 默认滚动参数
func DefaultScrollParams() ScrollParams {
	return ScrollParams{
		BaseDelay: DelayRange{Min: 500 * time.Millisecond, Max: 1200 * time.Millisecond},
	}
}

// AmountBounds 返回第i步(共count步)滚动幅度的上下界
func AmountBounds(i, count int) (lo, hi int) {
	if i == 0 || i == count-1 {
		return edgeAmount[0], edgeAmount[1]
	}
	return interiorAmount[0], interiorAmount[1]
}

// GenerateScroll 生成一段模拟人类阅读的滚动序列:
// 大概率先向下,偶尔反向,偶尔停下来"阅读"
func GenerateScroll(rng Rand, params ScrollParams) []ScrollStep {
	count := params.Count
	if count <= 0 {
		count = intBetween(rng, minScrollCount, maxScrollCount)
	}

	direction := 1
	if rng.Float64() < startUpChance {
		direction = -1
	}

	steps := make([]ScrollStep, 0, count)
	for i := range count {
		if i > 0 && rng.Float64() < flipChance {
			direction = -direction
		}
		lo, hi := AmountBounds(i, count)
		amount := intBetween(rng, lo, hi) * direction

		var delay time.Duration
		if rng.Float64() < readingChance {
			delay = readingPause.sample(rng)
		} else {
			delay = params.BaseDelay.sample(rng)
		}
		steps = append(steps, ScrollStep{Amount: amount, Delay: delay})
	}
	return steps
}

// Scroller 滚轮滚动
type Scroller interface {
	ScrollBy(ctx context.Context, dy float64) error
}

// PlayScroll 按顺序执行滚动序列
func PlayScroll(ctx context.Context, scroller Scroller, sleeper Sleeper, steps []ScrollStep) error {
	for i, step := range steps {
		if err := scroller.ScrollBy(ctx, float64(step.Amount)); err != nil {
			return fmt.Errorf("第 %d 次滚动失败: %w", i+1, err)
		}
		if err := sleeper.Sleep(ctx, step.Delay); err != nil {
			return err
		}
	}
	return nil
}
