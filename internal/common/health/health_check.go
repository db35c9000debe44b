package health

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Status is the aggregate health report served on /health.
type Status struct {
	Status    string                 `json:"status"` // "healthy" or "degraded"
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Checks    map[string]interface{} `json:"checks"`
	Duration  int64                  `json:"duration_ms"`
}

// Metrics captures current process metrics.
type Metrics struct {
	MemoryUsageMB  uint64 `json:"memory_usage_mb"`
	TotalAllocMB   uint64 `json:"total_alloc_mb"`
	GoroutineCount int    `json:"goroutine_count"`
	CPUNumCores    int    `json:"cpu_num_cores"`
	Uptime         int64  `json:"uptime_seconds"`
}

const (
	maxGoroutines = 10000
	maxMemoryMB   = 500
	maxDBLatency  = 100 * time.Millisecond
)

// Checker probes the database, the exercise generator and the Go
// runtime. AI outages never make the service unhealthy because the
// generator degrades to the static exercise bank on its own; they are
// surfaced as "degraded" so operators can tell the two modes apart.
type Checker struct {
	db        *gorm.DB
	version   string
	startTime time.Time

	// aiLive reports whether live generation is currently attempted.
	// Nil means the server runs without a provider (bank only).
	aiLive func() bool

	mu         sync.RWMutex
	lastStatus string
}

// NewChecker creates a checker. aiLive may be nil when no AI provider
// is configured.
func NewChecker(db *gorm.DB, version string, aiLive func() bool) *Checker {
	return &Checker{
		db:        db,
		version:   version,
		startTime: time.Now(),
		aiLive:    aiLive,
	}
}

// Check runs every probe and aggregates the result.
func (hc *Checker) Check() Status {
	start := time.Now()
	status := Status{
		Timestamp: start,
		Version:   hc.version,
		Checks:    make(map[string]interface{}),
	}

	healthy := true

	dbHealthy, dbCheck := hc.checkDatabase()
	status.Checks["database"] = dbCheck
	healthy = healthy && dbHealthy

	status.Checks["exercise_generator"] = map[string]interface{}{
		"mode": hc.generatorMode(),
	}

	goroutines := runtime.NumGoroutine()
	status.Checks["goroutines"] = map[string]interface{}{
		"count":   goroutines,
		"healthy": goroutines < maxGoroutines,
	}
	healthy = healthy && goroutines < maxGoroutines

	memHealthy, memCheck := hc.checkMemory()
	status.Checks["memory"] = memCheck
	healthy = healthy && memHealthy

	status.Checks["uptime_seconds"] = int64(time.Since(hc.startTime).Seconds())

	if healthy && hc.generatorMode() != "fallback" {
		status.Status = "healthy"
	} else {
		status.Status = "degraded"
	}
	status.Duration = time.Since(start).Milliseconds()

	hc.mu.Lock()
	hc.lastStatus = status.Status
	hc.mu.Unlock()

	return status
}

// generatorMode reports how exercises are currently produced.
func (hc *Checker) generatorMode() string {
	switch {
	case hc.aiLive == nil:
		return "bank_only"
	case hc.aiLive():
		return "live"
	default:
		return "fallback"
	}
}

func (hc *Checker) checkDatabase() (bool, interface{}) {
	if hc.db == nil {
		return false, map[string]interface{}{
			"healthy": false,
			"error":   "database not initialized",
		}
	}

	start := time.Now()
	sqlDB, err := hc.db.DB()
	if err != nil {
		return false, map[string]interface{}{
			"healthy": false,
			"error":   fmt.Sprintf("failed to get database connection: %v", err),
		}
	}
	if err := sqlDB.Ping(); err != nil {
		return false, map[string]interface{}{
			"healthy": false,
			"error":   fmt.Sprintf("database ping failed: %v", err),
		}
	}
	latency := time.Since(start)

	return true, map[string]interface{}{
		"healthy":    true,
		"latency_ms": latency.Milliseconds(),
		"latency_ok": latency < maxDBLatency,
	}
}

func (hc *Checker) checkMemory() (bool, interface{}) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	memoryMB := m.Alloc / 1024 / 1024
	healthy := memoryMB < maxMemoryMB

	return healthy, map[string]interface{}{
		"healthy":      healthy,
		"allocated_mb": memoryMB,
		"sys_mb":       m.Sys / 1024 / 1024,
		"num_gc":       m.NumGC,
	}
}

// IsHealthy reports the outcome of the most recent Check.
func (hc *Checker) IsHealthy() bool {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.lastStatus == "healthy"
}

// IsReady reports whether the service can take traffic. The database is
// the only hard dependency; exercises fall back to the static bank when
// the AI provider is down.
func (hc *Checker) IsReady() bool {
	if hc.db == nil {
		return false
	}
	sqlDB, err := hc.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

// IsAlive reports whether the process is running.
func (hc *Checker) IsAlive() bool {
	return true
}

// GetMetrics returns current process metrics.
func (hc *Checker) GetMetrics() Metrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return Metrics{
		MemoryUsageMB:  m.Alloc / 1024 / 1024,
		TotalAllocMB:   m.TotalAlloc / 1024 / 1024,
		GoroutineCount: runtime.NumGoroutine(),
		CPUNumCores:    runtime.NumCPU(),
		Uptime:         int64(time.Since(hc.startTime).Seconds()),
	}
}
