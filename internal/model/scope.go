package model

// Scope carries the identity of the authenticated user through a request.
type Scope struct {
	Username string
}
