package model

// Scope identifies who a request acts for. Shop requests carry a browsing
// session; admin requests additionally set Admin.
type Scope struct {
	SessionID string
	Admin     bool
}
