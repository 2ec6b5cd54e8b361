// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

// validate checks the invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	s := cfg.Sync
	if s.ChunkSize < 0 || s.MaxRetries < 0 || s.ProgressBuffer < 0 {
		return fmt.Errorf("%w: negative size", ErrInvalidSyncConfigs)
	}
	if s.RetryBaseDelay < 0 || s.RetryMaxDelay < 0 || s.ChunkPause < 0 {
		return fmt.Errorf("%w: negative delay", ErrInvalidSyncConfigs)
	}
	if len(s.Collections) > 0 {
		for _, c := range s.CriticalCollections {
			if !slices.Contains(s.Collections, c) {
				return fmt.Errorf("%w: critical collection %q is not synchronized", ErrInvalidSyncConfigs, c)
			}
		}
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.IssueToken != "" {
		return cfg.validateTokenIssuer()
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	return cfg.validateTokenIssuer()
}

func (cfg *StructuredConfig) validateTokenIssuer() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.HasPrefix(cfg.Storage.DB.DSN, "postgres") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Adapter.Token == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
