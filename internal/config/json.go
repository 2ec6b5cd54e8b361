package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key,omitempty"`
		TokenIssuer   string   `json:"token_issuer,omitempty"`
		TokenDuration Duration `json:"token_duration,omitempty"`
		Version       string   `json:"version,omitempty"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn,omitempty"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address,omitempty"`
		GRPCAddress    string   `json:"grpc_address,omitempty"`
		RequestTimeout Duration `json:"request_timeout,omitempty"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address,omitempty"`
		RequestTimeout Duration `json:"request_timeout,omitempty"`
		Token          string   `json:"token,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval   Duration `json:"sync_interval,omitempty"`
		HealthInterval Duration `json:"health_interval,omitempty"`
	} `json:"workers,omitempty"`

	Sync struct {
		ChunkSize           int      `json:"chunk_size,omitempty"`
		MaxRetries          int      `json:"max_retries,omitempty"`
		RetryBaseDelay      Duration `json:"retry_base_delay,omitempty"`
		RetryMaxDelay       Duration `json:"retry_max_delay,omitempty"`
		ChunkPause          Duration `json:"chunk_pause,omitempty"`
		Collections         []string `json:"collections,omitempty"`
		CriticalCollections []string `json:"critical_collections,omitempty"`
		ProgressBuffer      int      `json:"progress_buffer,omitempty"`
	} `json:"sync,omitempty"`

	Logs struct {
		Path string `json:"path,omitempty"`
	} `json:"logs,omitempty"`
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
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Workers: Workers{
			SyncInterval:   time.Duration(jsonCfg.Workers.SyncInterval),
			HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval),
		},
		Sync: Sync{
			ChunkSize:           jsonCfg.Sync.ChunkSize,
			MaxRetries:          jsonCfg.Sync.MaxRetries,
			RetryBaseDelay:      time.Duration(jsonCfg.Sync.RetryBaseDelay),
			RetryMaxDelay:       time.Duration(jsonCfg.Sync.RetryMaxDelay),
			ChunkPause:          time.Duration(jsonCfg.Sync.ChunkPause),
			Collections:         jsonCfg.Sync.Collections,
			CriticalCollections: jsonCfg.Sync.CriticalCollections,
			ProgressBuffer:      jsonCfg.Sync.ProgressBuffer,
		},
		Logs:         Logs{Path: jsonCfg.Logs.Path},
		JSONFilePath: "",
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
