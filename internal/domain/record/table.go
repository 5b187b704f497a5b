package record

import (
	"github.com/LouYuanbo1/gamecrawler/internal/domain/entity"
)

// RecordTable 全局累积的列存储。各列长度始终相等,第i个位置组成一条记录。
// 只追加,不截断,不去重:每次提取都是对整个文档的重新扫描,
// 之前的记录会在之后的提取中再次出现并再次追加。
type RecordTable struct {
	names         []Cell
	providers     []Cell
	descriptions  []Cell
	genres        []Cell
	providerLinks []Cell
	imageURLs     []Cell
	platforms     []TagCell
}

func NewRecordTable() *RecordTable {
	return &RecordTable{}
}

func cellAt(col []Cell, i int) Cell {
	if i < len(col) {
		return col[i]
	}
	return Missing
}

// Accumulate 按位置对齐一次提取结果并追加。
// 较短的列用Missing补齐到本次最长列的长度
func (rt *RecordTable) Accumulate(pass *ExtractionPass) {
	if pass == nil {
		return
	}
	for i := range pass.Width() {
		rt.names = append(rt.names, cellAt(pass.Names, i))
		rt.providers = append(rt.providers, cellAt(pass.Providers, i))
		rt.descriptions = append(rt.descriptions, cellAt(pass.Descriptions, i))
		rt.genres = append(rt.genres, cellAt(pass.Genres, i))
		rt.providerLinks = append(rt.providerLinks, cellAt(pass.ProviderLinks, i))
		rt.imageURLs = append(rt.imageURLs, cellAt(pass.ImageURLs, i))

		tags := TagCell{}
		if i < len(pass.Platforms) {
			tags = TagCell{Tags: append([]string{}, pass.Platforms[i]...), Valid: true}
		}
		rt.platforms = append(rt.platforms, tags)
	}
}

// Size 当前记录数量
func (rt *RecordTable) Size() int {
	return len(rt.names)
}

// Len 返回指定列的长度
func (rt *RecordTable) Len(col Column) int {
	switch col {
	case ColumnName:
		return len(rt.names)
	case ColumnProvider:
		return len(rt.providers)
	case ColumnDescription:
		return len(rt.descriptions)
	case ColumnGenre:
		return len(rt.genres)
	case ColumnProviderLink:
		return len(rt.providerLinks)
	case ColumnImageURL:
		return len(rt.imageURLs)
	case ColumnPlatform:
		return len(rt.platforms)
	default:
		return 0
	}
}

// Cells 返回字段列的副本,ColumnPlatform请使用Platforms
func (rt *RecordTable) Cells(col Column) []Cell {
	var src []Cell
	switch col {
	case ColumnName:
		src = rt.names
	case ColumnProvider:
		src = rt.providers
	case ColumnDescription:
		src = rt.descriptions
	case ColumnGenre:
		src = rt.genres
	case ColumnProviderLink:
		src = rt.providerLinks
	case ColumnImageURL:
		src = rt.imageURLs
	}
	return append([]Cell(nil), src...)
}

// Platforms 返回平台标签列的副本
func (rt *RecordTable) Platforms() []TagCell {
	return append([]TagCell(nil), rt.platforms...)
}

// Rows 逐位置组装记录,用于导出
func (rt *RecordTable) Rows() []entity.GameRow {
	rows := make([]entity.GameRow, 0, rt.Size())
	for i := range rt.Size() {
		rows = append(rows, entity.GameRow{
			Slot:         i,
			Name:         toOptional(rt.names[i]),
			Provider:     toOptional(rt.providers[i]),
			Description:  toOptional(rt.descriptions[i]),
			Genre:        toOptional(rt.genres[i]),
			ProviderLink: toOptional(rt.providerLinks[i]),
			ImageURL:     toOptional(rt.imageURLs[i]),
			Platforms:    rt.platforms[i].Tags,
			HasPlatforms: rt.platforms[i].Valid,
		})
	}
	return rows
}

func toOptional(c Cell) *string {
	if !c.Valid {
		return nil
	}
	v := c.Value
	return &v
}
