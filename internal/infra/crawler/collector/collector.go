package collector

import (
	"github.com/LouYuanbo1/gamecrawler/internal/domain/record"
)

// Selectors 各字段的CSS选择器。Attr为空表示取元素文本
type Selectors struct {
	Name              string
	Provider          string
	Description       string
	Genre             string
	ProviderLink      string
	ProviderLinkAttr  string
	Image             string
	ImageAttr         string
	PlatformContainer string
	PlatformLabel     string
	PlatformLabelAttr string
}

// DefaultSelectors itch.io 游戏列表页的选择器
func DefaultSelectors() Selectors {
	return Selectors{
		Name:              "div.game_title a",
		Provider:          "div.game_author a",
		Description:       "div.game_text",
		Genre:             "div.game_genre",
		ProviderLink:      "div.game_author a",
		ProviderLinkAttr:  "href",
		Image:             "img.lazy_loaded",
		ImageAttr:         "src",
		PlatformContainer: "div.game_platform",
		PlatformLabel:     "span",
		PlatformLabelAttr: "title",
	}
}

// Extractor 从一次页面快照中提取按位置排列的字段列
type Extractor interface {
	Extract(snapshot string) (*record.ExtractionPass, error)
}
