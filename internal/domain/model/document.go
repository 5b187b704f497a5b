package model

import (
	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
)

type Document interface {
	*GameDoc
	GetID() string
	GetIndex() string
	GetTypeMapping() *types.TypeMapping
}

// 默认索引名,可通过SetGameIndex修改
var gameIndex = "games"

// SetGameIndex 设置GameDoc写入的索引名
func SetGameIndex(index string) {
	if index != "" {
		gameIndex = index
	}
}

type GameDoc struct {
	ID           string   `json:"-"`
	Slot         int      `json:"slot"`
	Name         string   `json:"name"`
	Provider     string   `json:"provider"`
	Description  string   `json:"description"`
	Genre        string   `json:"genre"`
	ProviderLink string   `json:"provider_link"`
	ImageURL     string   `json:"image_url"`
	Platforms    []string `json:"platforms"`
}

func (d *GameDoc) GetID() string {
	return d.ID
}

func (d *GameDoc) GetIndex() string {
	return gameIndex
}

func (d *GameDoc) GetTypeMapping() *types.TypeMapping {
	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"slot":          types.NewIntegerNumberProperty(),
			"name":          types.NewTextProperty(),
			"provider":      types.NewKeywordProperty(),
			"description":   types.NewTextProperty(),
			"genre":         types.NewKeywordProperty(),
			"provider_link": types.NewKeywordProperty(),
			"image_url":     types.NewKeywordProperty(),
			"platforms":     types.NewKeywordProperty(),
		},
	}
}
