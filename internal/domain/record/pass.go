package record

// Cell 一个可选字段值。Valid为false表示缺失(对齐填充或属性不存在)
type Cell struct {
	Value string
	Valid bool
}

// Missing 缺失标记
var Missing = Cell{}

// Present 构造一个存在的字段值
func Present(v string) Cell {
	return Cell{Value: v, Valid: true}
}

// TagCell 一个记录位置上的平台标签列表,Valid为false表示该位置没有平台容器
type TagCell struct {
	Tags  []string
	Valid bool
}

// 字段列,顺序即导出列顺序
type Column int

const (
	ColumnName Column = iota
	ColumnProvider
	ColumnDescription
	ColumnGenre
	ColumnProviderLink
	ColumnImageURL
	ColumnPlatform
)

// ExtractionPass 对一次快照的完整提取结果,各列按文档顺序排列,长度可能不同
type ExtractionPass struct {
	Names         []Cell
	Providers     []Cell
	Descriptions  []Cell
	Genres        []Cell
	ProviderLinks []Cell
	ImageURLs     []Cell
	// 每个平台容器一个标签列表,可以为空
	Platforms [][]string
}

func (p *ExtractionPass) cellColumns() [][]Cell {
	return [][]Cell{p.Names, p.Providers, p.Descriptions, p.Genres, p.ProviderLinks, p.ImageURLs}
}

// Width 本次提取中最长列的长度
func (p *ExtractionPass) Width() int {
	width := len(p.Platforms)
	for _, col := range p.cellColumns() {
		width = max(width, len(col))
	}
	return width
}
