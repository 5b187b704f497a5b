package tabular

import (
	"encoding/json"

	"github.com/LouYuanbo1/gamecrawler/internal/domain/entity"
)

// Header 导出列顺序: 名称、开发者、描述、类型、开发者链接、图片、平台
var Header = []string{"nombre", "provedor", "descripcion", "genero", "enlace_provedor", "url_imagen", "plataforma"}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// EncodeRow 缺失值写为空单元格,平台标签写为JSON数组
func EncodeRow(row entity.GameRow) ([]string, error) {
	platforms := ""
	if row.HasPlatforms {
		tags := row.Platforms
		if tags == nil {
			tags = []string{}
		}
		b, err := json.Marshal(tags)
		if err != nil {
			return nil, err
		}
		platforms = string(b)
	}
	return []string{
		optional(row.Name),
		optional(row.Provider),
		optional(row.Description),
		optional(row.Genre),
		optional(row.ProviderLink),
		optional(row.ImageURL),
		platforms,
	}, nil
}
