package domain

import "context"

// Fetcher returns the compressed Contents index for an architecture
type Fetcher interface {
	Fetch(ctx context.Context, architecture string) ([]byte, error)
}

// ServicePort is consumed by handlers and the CLI
type ServicePort interface {
	Top(ctx context.Context, in TopInput) (TopResult, error)
}
