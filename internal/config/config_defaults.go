package config

import "time"

const defaultClientDSN = "records.db"

// defaults returns the values used for every field no other source sets.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-records-sync",
			TokenDuration: 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SyncInterval:   5 * time.Minute,
			HealthInterval: 15 * time.Second,
		},
		Sync: Sync{
			ChunkSize:      200,
			MaxRetries:     3,
			RetryBaseDelay: 500 * time.Millisecond,
			RetryMaxDelay:  10 * time.Second,
			Collections: []string{
				"company", "settings", "tax_rates", "currencies", "users",
				"accounts", "contacts", "products", "invoices", "invoice_lines",
				"payments", "expenses", "journal_entries", "employees", "payroll_runs",
			},
			CriticalCollections: []string{"company", "settings", "tax_rates", "currencies", "users"},
			ProgressBuffer:      64,
		},
	}
}
