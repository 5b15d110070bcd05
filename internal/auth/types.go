package auth

import "time"

// Credential is one configured login. PasswordHash is a bcrypt hash;
// plaintext passwords never appear in code or in memory past startup.
type Credential struct {
	Username     string
	PasswordHash string
}

type LoginInput struct {
	Username string
	Password string
	// IP identifies the client for login throttling.
	IP string
}

type LoginOutput struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}
