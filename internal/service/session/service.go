package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/LouYuanbo1/gamecrawler/internal/domain/record"
	"github.com/LouYuanbo1/gamecrawler/internal/humanize"
	"github.com/LouYuanbo1/gamecrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/gamecrawler/internal/infra/crawler/collector"
	"github.com/LouYuanbo1/gamecrawler/param"
	"go.uber.org/zap"
)

var (
	// ErrNavigation 导航超时或目标不可达
	ErrNavigation = errors.New("navigation failure")
	// ErrExport 导出失败
	ErrExport = errors.New("export failure")
)

type State int

const (
	StateIdle State = iota
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Exporter 导出最终记录表
type Exporter interface {
	WriteTable(ctx context.Context, table *record.RecordTable) error
}

// Driver 驱动一次完整的会话: 导航 → 初始鼠标移动 → {滚动 → 快照 → 提取 → 累积} 直到达到目标 → 导出。
// 单线程顺序执行,浏览器在所有退出路径上恰好关闭一次
type Driver struct {
	browser   chrome.ChromeCrawler
	extractor collector.Extractor
	exporter  Exporter
	table     *record.RecordTable
	params    *param.Session
	rng       humanize.Rand
	sleeper   humanize.Sleeper
	logger    *zap.Logger
	state     State
	passes    int
}

type Option func(*Driver)

func WithRand(rng humanize.Rand) Option {
	return func(d *Driver) { d.rng = rng }
}

func WithSleeper(sleeper humanize.Sleeper) Option {
	return func(d *Driver) { d.sleeper = sleeper }
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

func InitSessionDriver(
	browser chrome.ChromeCrawler,
	extractor collector.Extractor,
	exporter Exporter,
	table *record.RecordTable,
	params *param.Session,
	opts ...Option,
) *Driver {
	d := &Driver{
		browser:   browser,
		extractor: extractor,
		exporter:  exporter,
		table:     table,
		params:    params,
		rng:       humanize.NewRand(0),
		sleeper:   humanize.ContextSleeper{},
		logger:    zap.NewNop(),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

func (d *Driver) State() State {
	return d.state
}

// Passes 已完成的提取轮数
func (d *Driver) Passes() int {
	return d.passes
}

func (d *Driver) Table() *record.RecordTable {
	return d.table
}

func (d *Driver) Run(ctx context.Context) error {
	defer func() {
		if err := d.browser.Close(); err != nil {
			d.logger.Warn("关闭浏览器失败", zap.Error(err))
		}
	}()

	if err := d.start(ctx); err != nil {
		return err
	}

	d.state = StateRunning
	for d.table.Size() < d.params.Target {
		if err := d.pass(ctx); err != nil {
			return fmt.Errorf("第 %d 轮提取失败: %w", d.passes+1, err)
		}
	}
	d.state = StateDone
	d.logger.Info("达到目标数量", zap.Int("size", d.table.Size()), zap.Int("target", d.params.Target), zap.Int("passes", d.passes))

	if err := d.exporter.WriteTable(ctx, d.table); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	d.logger.Info("导出完成", zap.Int("rows", d.table.Size()))
	return nil
}

func (d *Driver) start(ctx context.Context) error {
	d.logger.Info("访问页面", zap.String("url", d.params.Url), zap.Duration("timeout", d.params.NavigationTimeout))
	if err := d.browser.InitAndNavigate(ctx, d.params.Url, d.params.NavigationTimeout); err != nil {
		return fmt.Errorf("%w: %w", ErrNavigation, err)
	}
	if err := d.sleeper.Sleep(ctx, d.params.SettleDelay); err != nil {
		return err
	}

	move := d.params.InitialMove
	trajectory := humanize.GenerateTrajectory(d.rng, move.Start, move.End, move.Trajectory)
	if err := humanize.PlayTrajectory(ctx, d.browser, d.sleeper, trajectory); err != nil {
		return fmt.Errorf("初始鼠标移动失败: %w", err)
	}
	return nil
}

func (d *Driver) pass(ctx context.Context) error {
	steps := humanize.GenerateScroll(d.rng, d.params.Scroll)
	d.logger.Debug("执行渐进滚动", zap.Int("steps", len(steps)))
	if err := humanize.PlayScroll(ctx, d.browser, d.sleeper, steps); err != nil {
		return err
	}

	html, err := d.browser.HTML(ctx)
	if err != nil {
		return err
	}
	extraction, err := d.extractor.Extract(html)
	if err != nil {
		return err
	}
	d.table.Accumulate(extraction)
	d.passes++
	d.logger.Info("累积记录", zap.Int("size", d.table.Size()), zap.Int("target", d.params.Target), zap.Int("pass", d.passes))
	return nil
}
