package param

import (
	"time"

	"github.com/LouYuanbo1/gamecrawler/internal/config"
	"github.com/LouYuanbo1/gamecrawler/internal/humanize"
)

// InitialMove 导航完成后的一次初始鼠标移动
type InitialMove struct {
	Start      humanize.Point
	End        humanize.Point
	Trajectory humanize.TrajectoryParams
}

// Session 会话驱动参数
type Session struct {
	Url               string
	Target            int
	NavigationTimeout time.Duration
	// 导航后等待页面稳定
	SettleDelay time.Duration
	InitialMove InitialMove
	// 每轮滚动参数
	Scroll humanize.ScrollParams
}

func DefaultInitialMove() InitialMove {
	return InitialMove{
		Start: humanize.Point{X: 200, Y: 150},
		End:   humanize.Point{X: 500, Y: 800},
		Trajectory: humanize.TrajectoryParams{
			Steps:          60,
			MaxDeviation:   12,
			Delay:          humanize.DelayRange{Min: 10 * time.Millisecond, Max: 40 * time.Millisecond},
			CurveIntensity: 0.7,
		},
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func SessionFromConfig(cfg *config.Config) *Session {
	s := cfg.Session
	return &Session{
		Url:               s.Url,
		Target:            s.Target,
		NavigationTimeout: time.Duration(s.NavigationTimeoutSeconds) * time.Second,
		SettleDelay:       seconds(s.SettleSeconds),
		InitialMove:       DefaultInitialMove(),
		Scroll: humanize.ScrollParams{
			Count: s.ScrollTimes,
			BaseDelay: humanize.DelayRange{
				Min: seconds(s.ScrollBaseDelay.Min),
				Max: seconds(s.ScrollBaseDelay.Max),
			},
		},
	}
}
