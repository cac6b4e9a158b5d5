// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import (
	"time"
)

// Info represents general information about the service.
type Info struct {
	ServiceName    string    `json:"service_name"`
	Version        string    `json:"version"`
	UptimeSince    time.Time `json:"uptime_since"`
	StorageBackend string    `json:"storage_backend"`
}
