package rpc

import (
	"context"
	"time"
)

type HealthStatus struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
	Database  string  `json:"database"`
}

// Health is a public procedure returning a status snapshot. It never fails;
// an unreachable database is reported in the snapshot itself.
func (r *Router) Health(ctx context.Context) HealthStatus {
	database := "connected"
	status := "ok"

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.pinger.Ping(pingCtx); err != nil {
		database = "unreachable"
		status = "degraded"
	}

	return HealthStatus{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(r.startTime).Seconds(),
		Database:  database,
	}
}
