package es

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/LouYuanbo1/gamecrawler/internal/config"
	"github.com/LouYuanbo1/gamecrawler/internal/domain/model"
	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esutil"
	"go.uber.org/zap"
)

type typedEsClient[D model.Document] struct {
	client *elasticsearch.TypedClient
	logger *zap.Logger
	// 仅用于获取索引名和映射,不用于存储数据
	schemaDoc D
}

func InitTypedEsClient[D model.Document](cfg *config.Config, logger *zap.Logger) (TypedEsClient[D], error) {
	typedClient, err := elasticsearch.NewTypedClient(elasticsearch.Config{
		Username: cfg.Elasticsearch.Username,
		Password: cfg.Elasticsearch.Password,
		Addresses: []string{
			cfg.Elasticsearch.Address,
		},
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			// 跳过TLS验证（仅在开发环境中使用）
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("初始化Elasticsearch客户端失败: %w", err)
	}
	return &typedEsClient[D]{client: typedClient, logger: logger}, nil
}

func (tec *typedEsClient[D]) CreateIndexWithMapping(ctx context.Context) error {
	index := tec.schemaDoc.GetIndex()
	exists, err := tec.client.Indices.Exists(index).Do(ctx)
	if err != nil {
		return fmt.Errorf("检查索引是否存在失败: %w", err)
	}
	if exists {
		tec.logger.Info("索引已存在,跳过创建", zap.String("index", index))
		return nil
	}

	mapping := tec.schemaDoc.GetTypeMapping()
	if mapping == nil {
		_, err = tec.client.Indices.Create(index).Do(ctx)
	} else {
		_, err = tec.client.Indices.Create(index).Mappings(mapping).Do(ctx)
	}
	if err != nil {
		return fmt.Errorf("创建索引 %s 失败: %w", index, err)
	}
	tec.logger.Info("创建索引", zap.String("index", index))
	return nil
}

// BulkIndexDocsWithID 以文档ID批量写入,任一文档失败时返回错误
func (tec *typedEsClient[D]) BulkIndexDocsWithID(ctx context.Context, docs []D) error {
	if len(docs) == 0 {
		return nil
	}
	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         tec.schemaDoc.GetIndex(), // 目标索引名称
		Client:        tec.client,               // Elasticsearch 客户端
		NumWorkers:    2,                        // 并发工作协程数
		FlushBytes:    5 * 1024 * 1024,          // 5MB 时自动刷新
		FlushInterval: 30 * time.Second,         // 30秒自动刷新
		Refresh:       "true",
		OnError: func(ctx context.Context, err error) {
			tec.logger.Error("批量写入出错", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("创建批量写入器失败: %w", err)
	}

	var failed atomic.Int64
	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			_ = bi.Close(ctx)
			return fmt.Errorf("序列化文档 %s 失败: %w", doc.GetID(), err)
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.GetID(),
			Body:       bytes.NewReader(data),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					tec.logger.Error("写入文档失败", zap.String("id", item.DocumentID), zap.Error(err))
				} else {
					tec.logger.Error("写入文档失败", zap.String("id", item.DocumentID), zap.String("reason", res.Error.Reason))
				}
			},
		})
		if err != nil {
			_ = bi.Close(ctx)
			return fmt.Errorf("添加文档 %s 失败: %w", doc.GetID(), err)
		}
	}

	// 刷新并关闭批量写入器,确保所有文档都被处理
	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("关闭批量写入器失败: %w", err)
	}

	stats := bi.Stats()
	tec.logger.Info("批量写入完成",
		zap.Uint64("indexed", stats.NumIndexed),
		zap.Uint64("failed", stats.NumFailed),
	)
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d 个文档写入失败", n)
	}
	return nil
}

func (tec *typedEsClient[D]) CountDocs(ctx context.Context) (int64, error) {
	resp, err := tec.client.Count().Index(tec.schemaDoc.GetIndex()).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("统计文档数量失败: %w", err)
	}
	return resp.Count, nil
}
