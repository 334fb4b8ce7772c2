package dto

import "time"

// TimestampLayout renders UTC instants with millisecond precision, e.g. 2024-01-02T03:04:05.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in TimestampLayout after converting to UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp,omitempty"`
	Environment string `json:"environment,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// StatusResponse is returned by GET /api/status.
type StatusResponse struct {
	Status  string  `json:"status"`
	Service string  `json:"service"`
	Port    int     `json:"port"`
	Uptime  float64 `json:"uptime"`
}

// TypeCheckResponse is returned by GET /api/test-typescript.
type TypeCheckResponse struct {
	Message      string `json:"message"`
	TypesWorking bool   `json:"typesWorking"`
	Timestamp    string `json:"timestamp"`
}
