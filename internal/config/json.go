package config

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-smite-api/models"
	"github.com/goccy/go-json"
)

type StructuredJSONConfig struct {
	API struct {
		DevID          string   `json:"dev_id"`
		AuthKey        string   `json:"auth_key"`
		Platform       string   `json:"platform"`
		Format         string   `json:"format"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"api,omitempty"`

	Cache struct {
		Size int      `json:"size"`
		TTL  Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	Workers struct {
		KeepAliveInterval Duration `json:"keep_alive_interval"`
		SessionMaxAge     Duration `json:"session_max_age"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			DevID:          jsonCfg.API.DevID,
			AuthKey:        jsonCfg.API.AuthKey,
			BaseURL:        jsonCfg.API.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
			RateLimit:      jsonCfg.API.RateLimit,
			RateBurst:      jsonCfg.API.RateBurst,
		},
		Cache: Cache{
			Size: jsonCfg.Cache.Size,
			TTL:  time.Duration(jsonCfg.Cache.TTL),
		},
		Workers: Workers{
			KeepAliveInterval: time.Duration(jsonCfg.Workers.KeepAliveInterval),
			SessionMaxAge:     time.Duration(jsonCfg.Workers.SessionMaxAge),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	if jsonCfg.API.Platform != "" {
		if cfg.API.Platform, err = models.ParsePlatform(jsonCfg.API.Platform); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}
	if jsonCfg.API.Format != "" {
		if cfg.API.Format, err = models.ParseResponseFormat(jsonCfg.API.Format); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
