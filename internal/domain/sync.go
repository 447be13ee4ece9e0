package domain

import "time"

// SyncMetadata tracks the last synced content hash of a seeded config file,
// letting bootstrap skip unchanged configs.
type SyncMetadata struct {
	ConfigName  string    `json:"config_name"`
	ContentHash string    `json:"content_hash"`
	LastSynced  time.Time `json:"last_synced"`
}
