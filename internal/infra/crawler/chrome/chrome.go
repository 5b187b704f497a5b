package chrome

import (
	"context"
	"time"
)

// ChromeCrawler 独占的浏览器会话:导航、读取页面、鼠标移动与滚轮
type ChromeCrawler interface {
	InitAndNavigate(ctx context.Context, url string, timeout time.Duration) error
	HTML(ctx context.Context) (string, error)
	MoveMouseTo(ctx context.Context, x, y float64) error
	ScrollBy(ctx context.Context, dy float64) error
	Close() error
}
