package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/kodausch/advertising-go-client/advert"
)

type Config struct {
	SourceURL string `envconfig:"AD_SOURCE_URL" default:"http://localhost:8080/api/v1/adverts/latest"`
	Keyword   string `envconfig:"AD_KEYWORD" required:"true"`
	AppID     string `envconfig:"AD_APP_ID" required:"true"`
	IDFA      string `envconfig:"AD_IDFA" required:"true"`
	ExtraInfo string `envconfig:"AD_EXTRA_INFO"`

	CachePath    string        `envconfig:"AD_CACHE_PATH" default:"advert.db"`
	EventsURL    string        `envconfig:"AD_EVENTS_URL" default:"http://localhost:8080/api/v1/events"`
	ProbeAddress string        `envconfig:"AD_PROBE_ADDRESS" default:"1.1.1.1:53"`
	ProbeEvery   time.Duration `envconfig:"AD_PROBE_INTERVAL" default:"5s"`
}

func loadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) FetchRequest() advert.FetchRequest {
	return advert.FetchRequest{
		SourceURL: c.SourceURL,
		Keyword:   c.Keyword,
		AppID:     c.AppID,
		IDFA:      c.IDFA,
		ExtraInfo: c.ExtraInfo,
	}
}
