package platform

import (
	"strings"
	"unicode"
)

// Recognizer 根据展示文本(如 "Download for Windows")识别平台标签
type Recognizer interface {
	// Resolve 未识别时返回nil
	Resolve(label string) []string
}

// DefaultKeywords 关键词(小写) -> 规范平台标签
var DefaultKeywords = map[string]string{
	"windows": "Windows",
	"win":     "Windows",
	"macos":   "macOS",
	"osx":     "macOS",
	"mac":     "macOS",
	"linux":   "Linux",
	"android": "Android",
	"ios":     "iOS",
	"iphone":  "iOS",
	"ipad":    "iOS",
	"browser": "Web",
	"html5":   "Web",
	"web":     "Web",
}

type keywordRecognizer struct {
	keywords map[string]string
}

// NewRecognizer 使用给定关键词表创建识别器,nil或空表时使用DefaultKeywords
func NewRecognizer(keywords map[string]string) Recognizer {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	normalized := make(map[string]string, len(keywords))
	for k, v := range keywords {
		normalized[strings.ToLower(k)] = v
	}
	return &keywordRecognizer{keywords: normalized}
}

func (kr *keywordRecognizer) Resolve(label string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(label), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var tags []string
	seen := make(map[string]bool)
	for _, token := range tokens {
		tag, ok := kr.keywords[token]
		if !ok || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
