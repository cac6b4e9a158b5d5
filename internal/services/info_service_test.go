package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	info := NewInfoService("1.2.3", start, "sqlite").GetInfo()

	assert.Equal(t, ServiceName, info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, start, info.UptimeSince)
	assert.Equal(t, "sqlite", info.StorageBackend)
}
