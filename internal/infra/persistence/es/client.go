package es

import (
	"context"

	"github.com/LouYuanbo1/gamecrawler/internal/domain/model"
)

/*
// 所有的文档结构体要实现这三个函数

	type Document interface {
		GetID() string
		GetIndex() string
		GetTypeMapping() *types.TypeMapping
	}
*/
type TypedEsClient[D model.Document] interface {
	CreateIndexWithMapping(ctx context.Context) error
	BulkIndexDocsWithID(ctx context.Context, docs []D) error
	CountDocs(ctx context.Context) (int64, error)
}
