package health

import "context"

type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

type WelcomeResponse struct {
	Message string `json:"message"`
}

type ReadyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// anything the readiness probe can reach, normally the postgres pool
type Pinger interface {
	Ping(ctx context.Context) error
}
