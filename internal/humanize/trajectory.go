package humanize

import (
	"context"
	"fmt"
	"math"
	"time"
)

const (
	// MinSteps 轨迹采样点下限
	MinSteps = 20
	// 每10像素一个采样点
	pixelsPerStep = 10.0
	jitter        = 1.5
	hesitation    = 0.05
)

var hesitationDelay = DelayRange{Min: 100 * time.Millisecond, Max: 300 * time.Millisecond}

// Point 屏幕坐标
type Point struct {
	X float64
	Y float64
}

func (p Point) Dist(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// MotionStep 鼠标移动的一个采样点,到达后等待Delay
type MotionStep struct {
	Point
	Delay time.Duration
}

// TrajectoryParams 鼠标轨迹参数
type TrajectoryParams struct {
	// Steps <= 0 时根据距离计算
	Steps        int
	MaxDeviation float64
	Delay        DelayRange
	// 0为直线, 1为最大弯曲
	CurveIntensity float64
}

// DefaultTrajectoryParams 默认轨迹参数
func DefaultTrajectoryParams() TrajectoryParams {
	return TrajectoryParams{
		MaxDeviation:   10,
		Delay:          DelayRange{Min: 5 * time.Millisecond, Max: 30 * time.Millisecond},
		CurveIntensity: 0.5,
	}
}

func stepCount(start, end Point, steps int) int {
	if steps <= 0 {
		steps = int(start.Dist(end) / pixelsPerStep)
	}
	return max(steps, MinSteps)
}

// GenerateTrajectory 生成一条从start到end的二次贝塞尔曲线轨迹,
// 中段叠加微小抖动,速度两端慢中间快,偶尔停顿
func GenerateTrajectory(rng Rand, start, end Point, params TrajectoryParams) []MotionStep {
	steps := stepCount(start, end, params.Steps)

	ctrl := Point{
		X: start.X + (end.X-start.X)*0.5 + uniform(rng, -params.MaxDeviation, params.MaxDeviation)*params.CurveIntensity,
		Y: start.Y + (end.Y-start.Y)*0.5 + uniform(rng, -params.MaxDeviation, params.MaxDeviation)*params.CurveIntensity,
	}

	trajectory := make([]MotionStep, 0, steps)
	denom := float64(max(steps-1, 1))
	for i := range steps {
		t := float64(i) / denom
		u := 1 - t
		p := Point{
			X: u*u*start.X + 2*u*t*ctrl.X + t*t*end.X,
			Y: u*u*start.Y + 2*u*t*ctrl.Y + t*t*end.Y,
		}
		if t > 0.2 && t < 0.8 {
			p.X += uniform(rng, -jitter, jitter)
			p.Y += uniform(rng, -jitter, jitter)
		}
		trajectory = append(trajectory, MotionStep{Point: p})
	}

	for i := range trajectory {
		speed := math.Pow(math.Sin(math.Pi*float64(i)/float64(steps)), 0.8)
		delay := time.Duration(float64(params.Delay.sample(rng)) * (1.5 - speed))
		if i > 0 && i < steps-1 && rng.Float64() < hesitation {
			delay = hesitationDelay.sample(rng)
		}
		trajectory[i].Delay = max(delay, 0)
	}
	return trajectory
}

// Mover 移动鼠标到指定坐标
type Mover interface {
	MoveMouseTo(ctx context.Context, x, y float64) error
}

// PlayTrajectory 按顺序执行轨迹,每个点移动一次再等待
func PlayTrajectory(ctx context.Context, mover Mover, sleeper Sleeper, trajectory []MotionStep) error {
	for i, step := range trajectory {
		if err := mover.MoveMouseTo(ctx, step.X, step.Y); err != nil {
			return fmt.Errorf("第 %d 步鼠标移动失败: %w", i+1, err)
		}
		if err := sleeper.Sleep(ctx, step.Delay); err != nil {
			return err
		}
	}
	return nil
}
