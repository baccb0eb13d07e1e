package service

import "time"

const (
	// HeavyTimeout covers upload and summarize, which ship large payloads or
	// trigger heavy model compute on the engine.
	HeavyTimeout = 30 * time.Second

	// DefaultTimeout covers index, ask and search.
	DefaultTimeout = 10 * time.Second
)
