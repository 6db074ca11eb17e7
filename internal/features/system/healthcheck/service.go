package system_healthcheck

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct{}

type SystemHealth struct {
	MemoryTotalBytes   uint64  `json:"memoryTotalBytes"`
	MemoryUsedBytes    uint64  `json:"memoryUsedBytes"`
	MemoryUsedPercent  float64 `json:"memoryUsedPercent"`
	DiskTotalBytes     uint64  `json:"diskTotalBytes"`
	DiskAvailableBytes uint64  `json:"diskAvailableBytes"`
	DiskUsedPercent    float64 `json:"diskUsedPercent"`
}

func (s *HealthcheckService) GetSystemHealth() (*SystemHealth, error) {
	memoryStats, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	diskStats, err := disk.Usage("/")
	if err != nil {
		return nil, fmt.Errorf("failed to read disk stats: %w", err)
	}

	return &SystemHealth{
		MemoryTotalBytes:   memoryStats.Total,
		MemoryUsedBytes:    memoryStats.Used,
		MemoryUsedPercent:  memoryStats.UsedPercent,
		DiskTotalBytes:     diskStats.Total,
		DiskAvailableBytes: diskStats.Free,
		DiskUsedPercent:    diskStats.UsedPercent,
	}, nil
}
