package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodyBytes   int64    `json:"max_body_bytes"`
	} `json:"server,omitempty"`

	Yodeck struct {
		APILabel         string   `json:"api_label"`
		APIToken         string   `json:"api_token"`
		BaseURL          string   `json:"base_url"`
		UploadStrategy   string   `json:"upload_strategy"`
		RequestTimeout   Duration `json:"request_timeout"`
		MaxDownloadBytes int64    `json:"max_download_bytes"`
		Tags             []string `json:"tags"`
	} `json:"yodeck,omitempty"`

	Sync struct {
		Concurrency int     `json:"concurrency"`
		RateLimit   float64 `json:"rate_limit"`
		RateBurst   int     `json:"rate_burst"`
	} `json:"sync,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
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
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodyBytes:   jsonCfg.Server.MaxBodyBytes,
		},
		Yodeck: Yodeck{
			APILabel:         jsonCfg.Yodeck.APILabel,
			APIToken:         jsonCfg.Yodeck.APIToken,
			BaseURL:          jsonCfg.Yodeck.BaseURL,
			UploadStrategy:   jsonCfg.Yodeck.UploadStrategy,
			RequestTimeout:   time.Duration(jsonCfg.Yodeck.RequestTimeout),
			MaxDownloadBytes: jsonCfg.Yodeck.MaxDownloadBytes,
			Tags:             jsonCfg.Yodeck.Tags,
		},
		Sync: Sync{
			Concurrency: jsonCfg.Sync.Concurrency,
			RateLimit:   jsonCfg.Sync.RateLimit,
			RateBurst:   jsonCfg.Sync.RateBurst,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
