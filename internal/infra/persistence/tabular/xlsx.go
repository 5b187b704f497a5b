package tabular

import (
	"context"
	"fmt"

	"github.com/LouYuanbo1/gamecrawler/internal/domain/record"
	"github.com/xuri/excelize/v2"
)

type XlsxWriter struct {
	path  string
	sheet string
}

func InitXlsxWriter(path, sheet string) *XlsxWriter {
	return &XlsxWriter{path: path, sheet: sheet}
}

func (xw *XlsxWriter) Name() string {
	return "xlsx:" + xw.path
}

func toAny(fields []string) []any {
	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}

func (xw *XlsxWriter) Write(_ context.Context, table *record.RecordTable) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := f.SetSheetName("Sheet1", xw.sheet); err != nil {
		return fmt.Errorf("设置工作表名称失败: %w", err)
	}

	header := toAny(Header)
	if err := f.SetSheetRow(xw.sheet, "A1", &header); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}
	for i, row := range table.Rows() {
		fields, err := EncodeRow(row)
		if err != nil {
			return fmt.Errorf("编码第 %d 行失败: %w", row.Slot, err)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := toAny(fields)
		if err := f.SetSheetRow(xw.sheet, cell, &values); err != nil {
			return fmt.Errorf("写入第 %d 行失败: %w", row.Slot, err)
		}
	}
	if err := f.SaveAs(xw.path); err != nil {
		return fmt.Errorf("保存XLSX失败: %w", err)
	}
	return nil
}
