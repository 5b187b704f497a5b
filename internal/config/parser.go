package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// DefaultCsvPath 导出文件的固定默认名
const DefaultCsvPath = "datos-videojuegos.csv"

func ParseConfig(byteConfig []byte) (*Config, error) {
	var cfg Config
	err := json.Unmarshal(byteConfig, &cfg)
	if err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	for _, dir := range []*string{&cfg.Rod.UserDataDir, &cfg.Chromedp.UserDataDir} {
		if *dir == "" {
			continue
		}
		absPath, err := filepath.Abs(*dir)
		if err != nil {
			return nil, err
		}
		*dir = absPath
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Browser == "" {
		cfg.Browser = BrowserRod
	}
	if cfg.Chromedp.LifeTime <= 0 {
		cfg.Chromedp.LifeTime = 3600
	}

	s := &cfg.Session
	if s.Url == "" {
		s.Url = "https://itch.io/games"
	}
	if s.Target == 0 {
		s.Target = 1000
	}
	if s.NavigationTimeoutSeconds <= 0 {
		s.NavigationTimeoutSeconds = 120
	}
	if s.SettleSeconds == 0 {
		s.SettleSeconds = 3
	}
	if s.ScrollTimes == 0 {
		s.ScrollTimes = 4
	}
	if s.ScrollBaseDelay == (Range{}) {
		s.ScrollBaseDelay = Range{Min: 0.6, Max: 1.3}
	}

	sel := &cfg.Selectors
	setDefault(&sel.Name, "div.game_title a")
	setDefault(&sel.Provider, "div.game_author a")
	setDefault(&sel.Description, "div.game_text")
	setDefault(&sel.Genre, "div.game_genre")
	setDefault(&sel.ProviderLink, "div.game_author a")
	setDefault(&sel.ProviderLinkAttr, "href")
	setDefault(&sel.Image, "img.lazy_loaded")
	setDefault(&sel.ImageAttr, "src")
	setDefault(&sel.PlatformContainer, "div.game_platform")
	setDefault(&sel.PlatformLabel, "span")
	setDefault(&sel.PlatformLabelAttr, "title")

	setDefault(&cfg.Export.CsvPath, DefaultCsvPath)
	setDefault(&cfg.Export.XlsxSheet, "games")
	setDefault(&cfg.Export.EsIndex, "games")

	setDefault(&cfg.Logger.ServiceName, "gamecrawler")
	setDefault(&cfg.Logger.Level, "info")
	setDefault(&cfg.Logger.Format, "console")
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func validate(cfg *Config) error {
	switch cfg.Browser {
	case BrowserRod, BrowserChromedp:
	default:
		return fmt.Errorf("未知浏览器类型: %s", cfg.Browser)
	}
	if cfg.Session.Target < 0 {
		return fmt.Errorf("目标数量必须为正数: %d", cfg.Session.Target)
	}
	if cfg.Session.ScrollTimes < 0 {
		return fmt.Errorf("滚动次数不能为负数: %d", cfg.Session.ScrollTimes)
	}
	if d := cfg.Session.ScrollBaseDelay; d.Min < 0 || d.Max < d.Min {
		return fmt.Errorf("滚动延迟区间无效: [%v, %v]", d.Min, d.Max)
	}
	return nil
}
