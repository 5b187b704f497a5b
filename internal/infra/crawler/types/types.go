package types

import "github.com/LouYuanbo1/gamecrawler/internal/config"

type Geolocation struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

// BrowserContext 页面级伪装参数,对两种浏览器后端通用
type BrowserContext struct {
	UserAgent         string
	Locale            string
	Width             int
	Height            int
	DeviceScaleFactor float64
	IsMobile          bool
	HasTouch          bool
	TimezoneID        string
	Geolocation       *Geolocation
	Permissions       []string
	ExtraHeaders      map[string]string
}

// AcceptLanguage 优先取额外请求头中的Accept-Language,否则使用Locale
func (bc *BrowserContext) AcceptLanguage() string {
	for k, v := range bc.ExtraHeaders {
		if k == "Accept-Language" {
			return v
		}
	}
	return bc.Locale
}

func BrowserContextFromConfig(cfg *config.Config) *BrowserContext {
	c := cfg.Context
	bc := &BrowserContext{
		UserAgent:         c.UserAgent,
		Locale:            c.Locale,
		Width:             c.Viewport.Width,
		Height:            c.Viewport.Height,
		DeviceScaleFactor: c.DeviceScaleFactor,
		IsMobile:          c.IsMobile,
		HasTouch:          c.HasTouch,
		TimezoneID:        c.TimezoneID,
		Permissions:       c.Permissions,
		ExtraHeaders:      c.ExtraHeaders,
	}
	if bc.DeviceScaleFactor == 0 {
		bc.DeviceScaleFactor = 1
	}
	if c.Geolocation != nil {
		bc.Geolocation = &Geolocation{
			Latitude:  c.Geolocation.Latitude,
			Longitude: c.Geolocation.Longitude,
			Accuracy:  c.Geolocation.Accuracy,
		}
		if bc.Geolocation.Accuracy <= 0 {
			bc.Geolocation.Accuracy = 100
		}
	}
	return bc
}
