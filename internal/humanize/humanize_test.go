package humanize

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSleeper struct {
	delays []time.Duration
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return ctx.Err()
}

type recordingDevice struct {
	moves   []Point
	scrolls []float64
	failAt  int
}

func (d *recordingDevice) MoveMouseTo(_ context.Context, x, y float64) error {
	if d.failAt > 0 && len(d.moves)+1 == d.failAt {
		return errors.New("boom")
	}
	d.moves = append(d.moves, Point{X: x, Y: y})
	return nil
}

func (d *recordingDevice) ScrollBy(_ context.Context, dy float64) error {
	d.scrolls = append(d.scrolls, dy)
	return nil
}

func TestGenerateTrajectoryEndpoints(t *testing.T) {
	start, end := Point{X: 200, Y: 150}, Point{X: 500, Y: 800}
	for seed := uint64(1); seed <= 50; seed++ {
		rng := NewRand(seed)
		params := TrajectoryParams{Steps: 60, MaxDeviation: 12, Delay: DelayRange{Min: 10 * time.Millisecond, Max: 40 * time.Millisecond}, CurveIntensity: 0.7}
		traj := GenerateTrajectory(rng, start, end, params)

		require.Len(t, traj, 60)
		assert.InDelta(t, start.X, traj[0].X, 1e-9)
		assert.InDelta(t, start.Y, traj[0].Y, 1e-9)
		assert.InDelta(t, end.X, traj[len(traj)-1].X, 1e-9)
		assert.InDelta(t, end.Y, traj[len(traj)-1].Y, 1e-9)
		for _, step := range traj {
			assert.GreaterOrEqual(t, step.Delay, time.Duration(0))
			// 1.5倍基础延迟或者停顿上限
			assert.LessOrEqual(t, step.Delay, 300*time.Millisecond)
		}
	}
}

func TestGenerateTrajectoryDerivedSteps(t *testing.T) {
	rng := NewRand(7)
	params := DefaultTrajectoryParams()

	short := GenerateTrajectory(rng, Point{}, Point{X: 30, Y: 40}, params)
	assert.Len(t, short, MinSteps)

	long := GenerateTrajectory(rng, Point{}, Point{X: 3000, Y: 4000}, params)
	assert.Len(t, long, 500)

	params.Steps = 3
	floored := GenerateTrajectory(rng, Point{}, Point{X: 100, Y: 100}, params)
	assert.Len(t, floored, MinSteps)
}

func TestGenerateTrajectoryDeterministic(t *testing.T) {
	params := DefaultTrajectoryParams()
	a := GenerateTrajectory(NewRand(42), Point{X: 1, Y: 2}, Point{X: 640, Y: 480}, params)
	b := GenerateTrajectory(NewRand(42), Point{X: 1, Y: 2}, Point{X: 640, Y: 480}, params)
	assert.Equal(t, a, b)
}

func TestGenerateTrajectoryStraightWithoutCurve(t *testing.T) {
	params := TrajectoryParams{Steps: 21, MaxDeviation: 50, CurveIntensity: 0}
	traj := GenerateTrajectory(NewRand(3), Point{}, Point{X: 200, Y: 0}, params)
	for i, step := range traj {
		tt := float64(i) / 20
		tol := 0.0
		if tt > 0.2 && tt < 0.8 {
			tol = jitter
		}
		assert.InDelta(t, 0, step.Y, tol+1e-9)
	}
}

func TestPlayTrajectory(t *testing.T) {
	traj := GenerateTrajectory(NewRand(5), Point{}, Point{X: 100, Y: 100}, DefaultTrajectoryParams())
	dev := &recordingDevice{}
	sleeper := &recordingSleeper{}

	require.NoError(t, PlayTrajectory(context.Background(), dev, sleeper, traj))
	require.Len(t, dev.moves, len(traj))
	require.Len(t, sleeper.delays, len(traj))
	for i := range traj {
		assert.Equal(t, traj[i].Point, dev.moves[i])
		assert.Equal(t, traj[i].Delay, sleeper.delays[i])
	}
}

func TestPlayTrajectoryStopsOnError(t *testing.T) {
	traj := GenerateTrajectory(NewRand(5), Point{}, Point{X: 100, Y: 100}, DefaultTrajectoryParams())
	dev := &recordingDevice{failAt: 3}
	sleeper := &recordingSleeper{}

	err := PlayTrajectory(context.Background(), dev, sleeper, traj)
	require.Error(t, err)
	assert.Len(t, dev.moves, 2)
	assert.Len(t, sleeper.delays, 2)
}

func TestGenerateScrollBounds(t *testing.T) {
	base := DelayRange{Min: 600 * time.Millisecond, Max: 1300 * time.Millisecond}
	for seed := uint64(1); seed <= 100; seed++ {
		steps := GenerateScroll(NewRand(seed), ScrollParams{Count: 4, BaseDelay: base})
		require.Len(t, steps, 4)
		for i, step := range steps {
			lo, hi := AmountBounds(i, len(steps))
			amount := step.Amount
			if amount < 0 {
				amount = -amount
			}
			assert.GreaterOrEqual(t, amount, lo)
			assert.LessOrEqual(t, amount, hi)
			assert.GreaterOrEqual(t, step.Delay, base.Min)
			assert.LessOrEqual(t, step.Delay, readingPause.Max)
		}
	}
}

func TestGenerateScrollDefaultCount(t *testing.T) {
	seen := map[int]bool{}
	for seed := uint64(1); seed <= 200; seed++ {
		steps := GenerateScroll(NewRand(seed), DefaultScrollParams())
		assert.GreaterOrEqual(t, len(steps), minScrollCount)
		assert.LessOrEqual(t, len(steps), maxScrollCount)
		seen[len(steps)] = true
	}
	assert.Len(t, seen, maxScrollCount-minScrollCount+1)
}

func TestGenerateScrollMostlyStartsDown(t *testing.T) {
	down := 0
	for seed := uint64(1); seed <= 500; seed++ {
		if GenerateScroll(NewRand(seed), ScrollParams{Count: 1})[0].Amount > 0 {
			down++
		}
	}
	assert.Greater(t, down, 300)
}

func TestAmountBoundsSingleStep(t *testing.T) {
	lo, hi := AmountBounds(0, 1)
	assert.Equal(t, 150, lo)
	assert.Equal(t, 300, hi)
	lo, hi = AmountBounds(2, 5)
	assert.Equal(t, 300, lo)
	assert.Equal(t, 600, hi)
}

func TestPlayScroll(t *testing.T) {
	steps := []ScrollStep{{Amount: 200, Delay: time.Second}, {Amount: -400, Delay: 2 * time.Second}}
	dev := &recordingDevice{}
	sleeper := &recordingSleeper{}

	require.NoError(t, PlayScroll(context.Background(), dev, sleeper, steps))
	assert.Equal(t, []float64{200, -400}, dev.scrolls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeper.delays)
}

func TestContextSleeperCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	err := ContextSleeper{}.Sleep(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestContextSleeperWaits(t *testing.T) {
	start := time.Now()
	require.NoError(t, ContextSleeper{}.Sleep(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
