// filepath: internal/services/info_service.go
package services

import (
	"time"

	"people/internal/models"
)

// ServiceName is reported by the info endpoint.
const ServiceName = "People-API"

var _ InfoService = (*infoService)(nil)

type infoService struct {
	Version        string
	StartTime      time.Time
	StorageBackend string
}

// NewInfoService creates a new InfoService.
func NewInfoService(version string, startTime time.Time, storageBackend string) *infoService {
	return &infoService{
		Version:        version,
		StartTime:      startTime,
		StorageBackend: storageBackend,
	}
}

// GetInfo retrieves the application information.
func (s *infoService) GetInfo() models.Info {
	return models.Info{
		ServiceName:    ServiceName,
		Version:        s.Version,
		UptimeSince:    s.StartTime,
		StorageBackend: s.StorageBackend,
	}
}
