package export

import (
	"context"
	"fmt"

	"github.com/LouYuanbo1/gamecrawler/internal/config"
	"github.com/LouYuanbo1/gamecrawler/internal/domain/model"
	"github.com/LouYuanbo1/gamecrawler/internal/domain/record"
	"github.com/LouYuanbo1/gamecrawler/internal/infra/persistence/es"
	"github.com/LouYuanbo1/gamecrawler/internal/infra/persistence/tabular"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sink 一个导出目标
type Sink interface {
	Name() string
	Write(ctx context.Context, table *record.RecordTable) error
}

type Service struct {
	sinks  []Sink
	logger *zap.Logger
}

func InitExportService(logger *zap.Logger, sinks ...Sink) *Service {
	return &Service{sinks: sinks, logger: logger}
}

// SinksFromConfig CSV始终写入,XLSX和Elasticsearch按配置启用
func SinksFromConfig(cfg *config.Config, logger *zap.Logger) ([]Sink, error) {
	sinks := []Sink{tabular.InitCsvWriter(cfg.Export.CsvPath)}
	if cfg.Export.XlsxPath != "" {
		sinks = append(sinks, tabular.InitXlsxWriter(cfg.Export.XlsxPath, cfg.Export.XlsxSheet))
	}
	if cfg.Elasticsearch.Address != "" {
		model.SetGameIndex(cfg.Export.EsIndex)
		client, err := es.InitTypedEsClient[*model.GameDoc](cfg, logger)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, InitEsSink(client, logger))
	}
	return sinks, nil
}

// WriteTable 并发写入所有导出目标,任一失败则返回第一个错误
func (s *Service) WriteTable(ctx context.Context, table *record.RecordTable) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, sink := range s.sinks {
		g.Go(func() error {
			if err := sink.Write(ctx, table); err != nil {
				return fmt.Errorf("%s: %w", sink.Name(), err)
			}
			s.logger.Info("写入导出目标", zap.String("sink", sink.Name()), zap.Int("rows", table.Size()))
			return nil
		})
	}
	return g.Wait()
}

type esSink struct {
	client es.TypedEsClient[*model.GameDoc]
	logger *zap.Logger
}

func InitEsSink(client es.TypedEsClient[*model.GameDoc], logger *zap.Logger) Sink {
	return &esSink{client: client, logger: logger}
}

func (s *esSink) Name() string {
	return "elasticsearch"
}

func (s *esSink) Write(ctx context.Context, table *record.RecordTable) error {
	if err := s.client.CreateIndexWithMapping(ctx); err != nil {
		return err
	}
	rows := table.Rows()
	docs := make([]*model.GameDoc, 0, len(rows))
	for i := range rows {
		docs = append(docs, rows[i].ToDocument())
	}
	if err := s.client.BulkIndexDocsWithID(ctx, docs); err != nil {
		return err
	}
	count, err := s.client.CountDocs(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("索引文档数量", zap.Int64("count", count))
	return nil
}
