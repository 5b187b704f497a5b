package config

const (
	BrowserRod      = "rod"
	BrowserChromedp = "chromedp"
)

// Range 以秒为单位的闭区间
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Config struct {
	// rod 或 chromedp
	Browser string `json:"browser"`

	Rod struct {
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
		Leakless             bool   `json:"leakless"`
		Bin                  string `json:"bin"`
	} `json:"rod"`

	Chromedp struct {
		LifeTime             int    `json:"life_time"`
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
	} `json:"chromedp"`

	// 浏览器上下文伪装
	Context struct {
		UserAgent string `json:"user_agent"`
		Locale    string `json:"locale"`
		Viewport  struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"viewport"`
		DeviceScaleFactor float64 `json:"device_scale_factor"`
		IsMobile          bool    `json:"is_mobile"`
		HasTouch          bool    `json:"has_touch"`
		TimezoneID        string  `json:"timezone_id"`
		Geolocation       *struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Accuracy  float64 `json:"accuracy"`
		} `json:"geolocation"`
		Permissions  []string          `json:"permissions"`
		ExtraHeaders map[string]string `json:"extra_http_headers"`
	} `json:"context"`

	Session struct {
		Url                      string  `json:"url"`
		Target                   int     `json:"target"`
		NavigationTimeoutSeconds int     `json:"navigation_timeout_seconds"`
		SettleSeconds            float64 `json:"settle_seconds"`
		ScrollTimes              int     `json:"scroll_times"`
		ScrollBaseDelay          Range   `json:"scroll_base_delay"`
		// 0表示随机种子
		Seed uint64 `json:"seed"`
	} `json:"session"`

	Selectors struct {
		Name              string `json:"name"`
		Provider          string `json:"provider"`
		Description       string `json:"description"`
		Genre             string `json:"genre"`
		ProviderLink      string `json:"provider_link"`
		ProviderLinkAttr  string `json:"provider_link_attr"`
		Image             string `json:"image"`
		ImageAttr         string `json:"image_attr"`
		PlatformContainer string `json:"platform_container"`
		PlatformLabel     string `json:"platform_label"`
		PlatformLabelAttr string `json:"platform_label_attr"`
	} `json:"selectors"`

	// 平台关键词表,为空时使用内置表
	PlatformKeywords map[string]string `json:"platform_keywords"`

	Export struct {
		CsvPath   string `json:"csv_path"`
		XlsxPath  string `json:"xlsx_path"`
		XlsxSheet string `json:"xlsx_sheet"`
		EsIndex   string `json:"es_index"`
	} `json:"export"`

	// Address为空时不写入Elasticsearch
	Elasticsearch struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Address  string `json:"address"`
	} `json:"elasticsearch"`

	Logger LoggerConfig `json:"logger"`
}

type LoggerConfig struct {
	ServiceName string `json:"service_name"`
	Level       string `json:"level"`
	// console 或 json
	Format     string `json:"format"`
	AddSource  bool   `json:"add_source"`
	LogFile    string `json:"log_file"`
	MaxSize    int    `json:"max_size"`
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"`
	Compress   bool   `json:"compress"`
}
