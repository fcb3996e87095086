package model

// Scope carries caller identity for a single request.
type Scope struct {
	RequestID string
	ClientIP  string
}
