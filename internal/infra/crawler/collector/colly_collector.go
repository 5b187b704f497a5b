package collector

import (
	"fmt"
	"strings"

	"github.com/LouYuanbo1/gamecrawler/internal/config"
	"github.com/LouYuanbo1/gamecrawler/internal/domain/record"
	"github.com/LouYuanbo1/gamecrawler/internal/infra/platform"
	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

type collyExtractor struct {
	selectors  Selectors
	recognizer platform.Recognizer
}

func InitCollyExtractor(selectors Selectors, recognizer platform.Recognizer) Extractor {
	return &collyExtractor{
		selectors:  selectors,
		recognizer: recognizer,
	}
}

// SelectorsFromConfig 从配置构建选择器
func SelectorsFromConfig(cfg *config.Config) Selectors {
	s := cfg.Selectors
	return Selectors{
		Name:              s.Name,
		Provider:          s.Provider,
		Description:       s.Description,
		Genre:             s.Genre,
		ProviderLink:      s.ProviderLink,
		ProviderLinkAttr:  s.ProviderLinkAttr,
		Image:             s.Image,
		ImageAttr:         s.ImageAttr,
		PlatformContainer: s.PlatformContainer,
		PlatformLabel:     s.PlatformLabel,
		PlatformLabelAttr: s.PlatformLabelAttr,
	}
}

func (ce *collyExtractor) Extract(snapshot string) (*record.ExtractionPass, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snapshot))
	if err != nil {
		return nil, fmt.Errorf("解析HTML失败: %w", err)
	}
	if len(doc.Nodes) == 0 {
		return &record.ExtractionPass{}, nil
	}
	// 快照不是来自colly的请求,这里构造一个空响应,便于复用HTMLElement的子元素查询
	resp := &colly.Response{Request: &colly.Request{}, Body: []byte(snapshot)}
	root := colly.NewHTMLElementFromSelectionNode(resp, doc.Selection, doc.Nodes[0], 0)

	s := ce.selectors
	return &record.ExtractionPass{
		Names:         texts(root, s.Name),
		Providers:     texts(root, s.Provider),
		Descriptions:  texts(root, s.Description),
		Genres:        texts(root, s.Genre),
		ProviderLinks: attrs(root, s.ProviderLink, s.ProviderLinkAttr),
		ImageURLs:     attrs(root, s.Image, s.ImageAttr),
		Platforms:     ce.platforms(root),
	}, nil
}

// texts 按文档顺序取每个匹配元素的文本
func texts(root *colly.HTMLElement, selector string) []record.Cell {
	var cells []record.Cell
	root.ForEach(selector, func(_ int, e *colly.HTMLElement) {
		cells = append(cells, record.Present(normalize(e.Text)))
	})
	return cells
}

// attrs 按文档顺序取每个匹配元素的属性,属性不存在时为缺失
func attrs(root *colly.HTMLElement, selector, attr string) []record.Cell {
	if attr == "" {
		return texts(root, selector)
	}
	var cells []record.Cell
	root.ForEach(selector, func(_ int, e *colly.HTMLElement) {
		v, ok := e.DOM.Attr(attr)
		if !ok {
			cells = append(cells, record.Missing)
			return
		}
		cells = append(cells, record.Present(v))
	})
	return cells
}

// platforms 每个平台容器对应一个标签列表,未识别的标签不贡献任何值
func (ce *collyExtractor) platforms(root *colly.HTMLElement) [][]string {
	var lists [][]string
	root.ForEach(ce.selectors.PlatformContainer, func(_ int, container *colly.HTMLElement) {
		tags := []string{}
		container.ForEach(ce.selectors.PlatformLabel, func(_ int, label *colly.HTMLElement) {
			title, ok := label.DOM.Attr(ce.selectors.PlatformLabelAttr)
			title = strings.TrimSpace(title)
			if !ok || title == "" {
				return
			}
			tags = append(tags, ce.recognizer.Resolve(title)...)
		})
		lists = append(lists, tags)
	})
	return lists
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
