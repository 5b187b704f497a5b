package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/LouYuanbo1/gamecrawler/internal/domain/record"
)

type CsvWriter struct {
	path string
}

func InitCsvWriter(path string) *CsvWriter {
	return &CsvWriter{path: path}
}

func (cw *CsvWriter) Name() string {
	return "csv:" + cw.path
}

// Write 每个位置写一行,包含表头
func (cw *CsvWriter) Write(_ context.Context, table *record.RecordTable) (err error) {
	f, err := os.Create(cw.path)
	if err != nil {
		return fmt.Errorf("创建CSV文件失败: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("关闭CSV文件失败: %w", cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("写入CSV表头失败: %w", err)
	}
	for _, row := range table.Rows() {
		fields, err := EncodeRow(row)
		if err != nil {
			return fmt.Errorf("编码第 %d 行失败: %w", row.Slot, err)
		}
		if err := w.Write(fields); err != nil {
			return fmt.Errorf("写入第 %d 行失败: %w", row.Slot, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("写入CSV失败: %w", err)
	}
	return nil
}
