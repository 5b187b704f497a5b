package entity

import (
	"fmt"

	"github.com/LouYuanbo1/gamecrawler/internal/domain/model"
)

// 定义可导出的记录接口
// D是文档类型,必须实现model.Document接口
type Crawlable[D model.Document] interface {
	*GameRow
	ToDocument() D
}

// GameRow 记录表中一个位置组成的记录,nil表示缺失
type GameRow struct {
	Slot         int
	Name         *string
	Provider     *string
	Description  *string
	Genre        *string
	ProviderLink *string
	ImageURL     *string
	Platforms    []string
	// 该位置是否有对应的平台容器
	HasPlatforms bool
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToDocument 转换为索引文档。文档ID使用位置编号,重复出现的记录不会互相覆盖
func (gr *GameRow) ToDocument() *model.GameDoc {
	platforms := gr.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	return &model.GameDoc{
		ID:           fmt.Sprintf("%06d", gr.Slot),
		Slot:         gr.Slot,
		Name:         deref(gr.Name),
		Provider:     deref(gr.Provider),
		Description:  deref(gr.Description),
		Genre:        deref(gr.Genre),
		ProviderLink: deref(gr.ProviderLink),
		ImageURL:     deref(gr.ImageURL),
		Platforms:    platforms,
	}
}
