package chrome

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LouYuanbo1/gamecrawler/internal/config"
	"github.com/LouYuanbo1/gamecrawler/internal/infra/crawler/types"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"go.uber.org/zap"
)

var errNoPage = errors.New("页面尚未打开")

type rodCrawler struct {
	browser *rod.Browser
	page    *rod.Page
	bc      *types.BrowserContext
	logger  *zap.Logger
}

func InitRodCrawler(cfg *config.Config, bc *types.BrowserContext, logger *zap.Logger) (ChromeCrawler, error) {
	l := launcher.New().
		Headless(cfg.Rod.Headless).
		Leakless(cfg.Rod.Leakless).
		NoSandbox(cfg.Rod.NoSandbox)
	if cfg.Rod.Bin != "" {
		l = l.Bin(cfg.Rod.Bin)
	}
	if cfg.Rod.UserDataDir != "" {
		l = l.UserDataDir(cfg.Rod.UserDataDir)
	}
	if cfg.Rod.DisableBlinkFeatures != "" {
		l = l.Set("disable-blink-features", cfg.Rod.DisableBlinkFeatures)
	}
	if cfg.Rod.Incognito {
		l = l.Set("incognito")
	}
	if cfg.Rod.DisableDevShmUsage {
		l = l.Set("disable-dev-shm-usage")
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("启动浏览器失败: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("连接浏览器失败: %w", err)
	}
	logger.Info("rod浏览器已启动", zap.String("control_url", controlURL), zap.Bool("headless", cfg.Rod.Headless))
	return &rodCrawler{
		browser: browser,
		bc:      bc,
		logger:  logger,
	}, nil
}

func (rc *rodCrawler) InitAndNavigate(ctx context.Context, url string, timeout time.Duration) error {
	if len(rc.bc.Permissions) > 0 {
		perms := make([]proto.BrowserPermissionType, 0, len(rc.bc.Permissions))
		for _, p := range rc.bc.Permissions {
			perms = append(perms, proto.BrowserPermissionType(p))
		}
		if err := (proto.BrowserGrantPermissions{Permissions: perms}).Call(rc.browser); err != nil {
			return fmt.Errorf("授予权限失败: %w", err)
		}
	}

	page, err := stealth.Page(rc.browser)
	if err != nil {
		return fmt.Errorf("创建页面失败: %w", err)
	}
	rc.page = page
	if err := rc.emulate(page); err != nil {
		return err
	}

	p := page.Context(ctx).Timeout(timeout)
	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("导航失败: %w", err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("等待页面加载失败: %w", err)
	}
	rc.logger.Info("导航成功", zap.String("url", url))
	return nil
}

// emulate 在导航前应用语言、时区、地理位置、视口和请求头
func (rc *rodCrawler) emulate(page *rod.Page) error {
	bc := rc.bc
	if bc.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent:      bc.UserAgent,
			AcceptLanguage: bc.AcceptLanguage(),
		}); err != nil {
			return fmt.Errorf("设置UserAgent失败: %w", err)
		}
	}
	if bc.Width > 0 && bc.Height > 0 {
		if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:             bc.Width,
			Height:            bc.Height,
			DeviceScaleFactor: bc.DeviceScaleFactor,
			Mobile:            bc.IsMobile,
		}); err != nil {
			return fmt.Errorf("设置视口失败: %w", err)
		}
	}
	if err := (proto.EmulationSetTouchEmulationEnabled{Enabled: bc.HasTouch}).Call(page); err != nil {
		return fmt.Errorf("设置触摸模拟失败: %w", err)
	}
	if bc.Locale != "" {
		if err := (proto.EmulationSetLocaleOverride{Locale: bc.Locale}).Call(page); err != nil {
			return fmt.Errorf("设置语言失败: %w", err)
		}
	}
	if bc.TimezoneID != "" {
		if err := (proto.EmulationSetTimezoneOverride{TimezoneID: bc.TimezoneID}).Call(page); err != nil {
			return fmt.Errorf("设置时区失败: %w", err)
		}
	}
	if geo := bc.Geolocation; geo != nil {
		if err := (proto.EmulationSetGeolocationOverride{
			Latitude:  &geo.Latitude,
			Longitude: &geo.Longitude,
			Accuracy:  &geo.Accuracy,
		}).Call(page); err != nil {
			return fmt.Errorf("设置地理位置失败: %w", err)
		}
	}
	if len(bc.ExtraHeaders) > 0 {
		dict := make([]string, 0, len(bc.ExtraHeaders)*2)
		for k, v := range bc.ExtraHeaders {
			dict = append(dict, k, v)
		}
		if _, err := page.SetExtraHeaders(dict); err != nil {
			return fmt.Errorf("设置请求头失败: %w", err)
		}
	}
	return nil
}

func (rc *rodCrawler) HTML(ctx context.Context) (string, error) {
	if rc.page == nil {
		return "", errNoPage
	}
	html, err := rc.page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("获取页面HTML失败: %w", err)
	}
	return html, nil
}

func (rc *rodCrawler) MoveMouseTo(ctx context.Context, x, y float64) error {
	if rc.page == nil {
		return errNoPage
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return rc.page.Mouse.MoveTo(proto.Point{X: x, Y: y})
}

func (rc *rodCrawler) ScrollBy(ctx context.Context, dy float64) error {
	if rc.page == nil {
		return errNoPage
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return rc.page.Mouse.Scroll(0, dy, 1)
}

func (rc *rodCrawler) Close() error {
	return rc.browser.Close()
}
