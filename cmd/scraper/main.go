package main

import (
	"context"
	_ "embed"
	"os"
	"os/signal"
	"syscall"

	"github.com/LouYuanbo1/gamecrawler/internal/config"
	"github.com/LouYuanbo1/gamecrawler/internal/domain/record"
	"github.com/LouYuanbo1/gamecrawler/internal/humanize"
	"github.com/LouYuanbo1/gamecrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/gamecrawler/internal/infra/crawler/collector"
	"github.com/LouYuanbo1/gamecrawler/internal/infra/crawler/types"
	"github.com/LouYuanbo1/gamecrawler/internal/infra/platform"
	"github.com/LouYuanbo1/gamecrawler/internal/observability"
	"github.com/LouYuanbo1/gamecrawler/internal/service/export"
	"github.com/LouYuanbo1/gamecrawler/internal/service/session"
	"github.com/LouYuanbo1/gamecrawler/param"
	"go.uber.org/zap"
)

//使用go:embed嵌入appconfig.json文件
//下方注释重要,不能删除
//go:embed appconfig/appconfig.json
var appConfig []byte

func main() {
	appcfg, err := config.ParseConfig(appConfig)
	if err != nil {
		panic(err)
	}

	logger := observability.InitializeLogger(appcfg.Logger)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//初始化浏览器,rod或chromedp
	bc := types.BrowserContextFromConfig(appcfg)
	var browser chrome.ChromeCrawler
	switch appcfg.Browser {
	case config.BrowserChromedp:
		browser = chrome.InitChromedpCrawler(ctx, appcfg, bc, logger)
	default:
		browser, err = chrome.InitRodCrawler(appcfg, bc, logger)
		if err != nil {
			logger.Fatal("初始化RodCrawler失败", zap.Error(err))
		}
	}

	extractor := collector.InitCollyExtractor(
		collector.SelectorsFromConfig(appcfg),
		platform.NewRecognizer(appcfg.PlatformKeywords),
	)

	//CSV始终写入,XLSX与Elasticsearch按配置启用
	sinks, err := export.SinksFromConfig(appcfg, logger)
	if err != nil {
		_ = browser.Close()
		logger.Fatal("初始化导出目标失败", zap.Error(err))
	}
	exporter := export.InitExportService(logger, sinks...)

	driver := session.InitSessionDriver(
		browser,
		extractor,
		exporter,
		record.NewRecordTable(),
		param.SessionFromConfig(appcfg),
		session.WithRand(humanize.NewRand(appcfg.Session.Seed)),
		session.WithLogger(logger),
	)
	if err := driver.Run(ctx); err != nil {
		logger.Fatal("会话失败", zap.Stringer("state", driver.State()), zap.Error(err))
	}
	logger.Info("会话完成", zap.Int("rows", driver.Table().Size()), zap.Int("passes", driver.Passes()))
}
