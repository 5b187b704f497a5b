package chrome

import (
	"context"
	"fmt"
	"time"

	"github.com/LouYuanbo1/gamecrawler/internal/config"
	"github.com/LouYuanbo1/gamecrawler/internal/infra/crawler/types"
	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

type chromedpCrawler struct {
	pageCtx       context.Context
	pageCtxFuc    context.CancelFunc
	allocCtxFuc   context.CancelFunc
	timeoutCtxFuc context.CancelFunc
	bc            *types.BrowserContext
	logger        *zap.Logger
	// 滚轮事件需要坐标,记录最后一次鼠标位置
	mouseX, mouseY float64
}

func InitChromedpCrawler(ctx context.Context, cfg *config.Config, bc *types.BrowserContext, logger *zap.Logger) ChromeCrawler {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Chromedp.Headless),
		chromedp.Flag("incognito", cfg.Chromedp.Incognito),
		chromedp.Flag("disable-dev-shm-usage", cfg.Chromedp.DisableDevShmUsage),
		chromedp.Flag("no-sandbox", cfg.Chromedp.NoSandbox),
	)
	if cfg.Chromedp.DisableBlinkFeatures != "" {
		opts = append(opts, chromedp.Flag("disable-blink-features", cfg.Chromedp.DisableBlinkFeatures))
	}
	if cfg.Chromedp.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(cfg.Chromedp.UserDataDir))
	}
	if bc.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(bc.UserAgent))
	}
	if bc.Width > 0 && bc.Height > 0 {
		opts = append(opts, chromedp.WindowSize(bc.Width, bc.Height))
	}

	timeoutCtx, cancelTimeout := context.WithTimeout(ctx, time.Duration(cfg.Chromedp.LifeTime)*time.Second)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(timeoutCtx, opts...)
	pageCtx, cancelPage := chromedp.NewContext(allocCtx)
	logger.Info("chromedp分配器已创建", zap.Bool("headless", cfg.Chromedp.Headless), zap.Int("life_time", cfg.Chromedp.LifeTime))

	return &chromedpCrawler{
		pageCtx:       pageCtx,
		pageCtxFuc:    cancelPage,
		allocCtxFuc:   cancelAlloc,
		timeoutCtxFuc: cancelTimeout,
		bc:            bc,
		logger:        logger,
	}
}

// run 在页面上下文中执行动作,调用方ctx取消或超时时中止
func (cc *chromedpCrawler) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	var (
		runCtx context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(cc.pageCtx, timeout)
	} else {
		runCtx, cancel = context.WithCancel(cc.pageCtx)
	}
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

func (cc *chromedpCrawler) InitAndNavigate(ctx context.Context, url string, timeout time.Duration) error {
	// 第一次Run会启动浏览器,浏览器生命周期绑定到传入的ctx,所以必须使用pageCtx本身
	if err := chromedp.Run(cc.pageCtx); err != nil {
		return fmt.Errorf("启动浏览器失败: %w", err)
	}
	actions := append(cc.emulationActions(), chromedp.Navigate(url))
	if err := cc.run(ctx, timeout, actions...); err != nil {
		return fmt.Errorf("导航失败: %w", err)
	}
	cc.logger.Info("导航成功", zap.String("url", url))
	return nil
}

func (cc *chromedpCrawler) emulationActions() []chromedp.Action {
	bc := cc.bc
	actions := []chromedp.Action{network.Enable()}

	if len(bc.Permissions) > 0 {
		perms := make([]browser.PermissionType, 0, len(bc.Permissions))
		for _, p := range bc.Permissions {
			perms = append(perms, browser.PermissionType(p))
		}
		actions = append(actions, browser.GrantPermissions(perms))
	}
	if bc.UserAgent != "" {
		actions = append(actions, emulation.SetUserAgentOverride(bc.UserAgent).WithAcceptLanguage(bc.AcceptLanguage()))
	}
	if bc.Width > 0 && bc.Height > 0 {
		viewportOpts := []chromedp.EmulateViewportOption{chromedp.EmulateScale(bc.DeviceScaleFactor)}
		if bc.IsMobile {
			viewportOpts = append(viewportOpts, chromedp.EmulateMobile)
		}
		if bc.HasTouch {
			viewportOpts = append(viewportOpts, chromedp.EmulateTouch)
		}
		actions = append(actions, chromedp.EmulateViewport(int64(bc.Width), int64(bc.Height), viewportOpts...))
	}
	if bc.Locale != "" {
		actions = append(actions, emulation.SetLocaleOverride().WithLocale(bc.Locale))
	}
	if bc.TimezoneID != "" {
		actions = append(actions, emulation.SetTimezoneOverride(bc.TimezoneID))
	}
	if geo := bc.Geolocation; geo != nil {
		actions = append(actions, emulation.SetGeolocationOverride().
			WithLatitude(geo.Latitude).
			WithLongitude(geo.Longitude).
			WithAccuracy(geo.Accuracy))
	}
	if len(bc.ExtraHeaders) > 0 {
		headers := make(network.Headers, len(bc.ExtraHeaders))
		for k, v := range bc.ExtraHeaders {
			headers[k] = v
		}
		actions = append(actions, network.SetExtraHTTPHeaders(headers))
	}
	return actions
}

func (cc *chromedpCrawler) HTML(ctx context.Context) (string, error) {
	var res string
	if err := cc.run(ctx, 0, chromedp.OuterHTML("html", &res, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("获取页面HTML失败: %w", err)
	}
	return res, nil
}

func (cc *chromedpCrawler) MoveMouseTo(ctx context.Context, x, y float64) error {
	if err := cc.run(ctx, 0, chromedp.MouseEvent(input.MouseMoved, x, y)); err != nil {
		return err
	}
	cc.mouseX, cc.mouseY = x, y
	return nil
}

func (cc *chromedpCrawler) ScrollBy(ctx context.Context, dy float64) error {
	return cc.run(ctx, 0, input.DispatchMouseEvent(input.MouseWheel, cc.mouseX, cc.mouseY).
		WithDeltaX(0).
		WithDeltaY(dy))
}

func (cc *chromedpCrawler) Close() error {
	err := chromedp.Cancel(cc.pageCtx)
	cc.pageCtxFuc()
	cc.allocCtxFuc()
	cc.timeoutCtxFuc()
	return err
}
