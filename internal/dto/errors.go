package dto

import "fmt"

// QuotaExceededError is returned when a free-plan tenant tries to create
// a note past its limit. It is a distinct kind, not a not-found, so
// callers can offer the upgrade path.
type QuotaExceededError struct {
	Limit int `json:"limit"`
	Used  int `json:"used"`
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("free plan limit reached (%d notes), upgrade to pro", e.Limit)
}
