// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: time.Second,
			Token:          "token",
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "records.db"}},
		Workers: ClientWorkers{SyncInterval: time.Minute},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "in-memory store is allowed", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "postgres dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "postgres://x" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no interval", mutate: func(c *ClientConfig) { c.Workers.SyncInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "no token", mutate: func(c *ClientConfig) { c.Adapter.Token = "" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStructuredConfig_ValidateServer(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "key", TokenIssuer: "iss"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/records"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
	assert.NoError(t, cfg.validateServer())

	cfg.App.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidAppConfigs)

	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidStorageConfigs)
}

func TestStructuredConfig_ValidateServer_IssueTokenNeedsOnlyKeys(t *testing.T) {
	cfg := &StructuredConfig{
		App:        App{TokenSignKey: "key", TokenIssuer: "iss"},
		IssueToken: "acme",
	}
	assert.NoError(t, cfg.validateServer())

	cfg.App.TokenIssuer = ""
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidAppConfigs)
}

func TestStructuredConfig_ValidateSync(t *testing.T) {
	tests := []struct {
		name string
		sync Sync
		ok   bool
	}{
		{name: "zero", sync: Sync{}, ok: true},
		{name: "critical subset", sync: Sync{Collections: []string{"a", "b"}, CriticalCollections: []string{"b"}}, ok: true},
		{name: "critical without collection list", sync: Sync{CriticalCollections: []string{"b"}}, ok: true},
		{name: "critical not listed", sync: Sync{Collections: []string{"a"}, CriticalCollections: []string{"b"}}},
		{name: "negative chunk", sync: Sync{ChunkSize: -1}},
		{name: "negative retries", sync: Sync{MaxRetries: -2}},
		{name: "negative pause", sync: Sync{ChunkPause: -time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&StructuredConfig{Sync: tt.sync}).validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidSyncConfigs)
			}
		})
	}
}

func TestNewClientConfig_DefaultDSN(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{Sync: Sync{ChunkSize: 10}, Logs: Logs{Path: "x.log"}})

	assert.Equal(t, defaultClientDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, 10, cfg.Sync.ChunkSize)
	assert.Equal(t, "x.log", cfg.Logs.Path)
}
