package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"shared-task-tracker/internal/auth"
	pkgLog "shared-task-tracker/pkg/log"
)

const (
	maxSessions = 64
	maxLimiters = 1024
)

// session is the per-login state. The remote write token is held here so
// it expires with the session and never touches disk.
type session struct {
	mu          sync.Mutex
	username    string
	remoteToken string
}

type implUseCase struct {
	l          pkgLog.Logger
	users      map[string]string // username -> bcrypt hash
	dummyHash  []byte            // compared against for unknown usernames
	sessions   *expirable.LRU[string, *session]
	limiters   *expirable.LRU[string, *rate.Limiter]
	sessionTTL time.Duration
	loginRate  rate.Limit
	now        func() time.Time
}

// New creates a new auth UseCase instance. loginPerMin caps login
// attempts per client IP per minute.
func New(l pkgLog.Logger, creds []auth.Credential, sessionTTL time.Duration, loginPerMin int, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	users := make(map[string]string, len(creds))
	for _, c := range creds {
		users[c.Username] = c.PasswordHash
	}
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	return &implUseCase{
		l:          l,
		users:      users,
		dummyHash:  dummyHash,
		sessions:   expirable.NewLRU[string, *session](maxSessions, nil, sessionTTL),
		limiters:   expirable.NewLRU[string, *rate.Limiter](maxLimiters, nil, 10*time.Minute),
		sessionTTL: sessionTTL,
		loginRate:  rate.Limit(float64(loginPerMin) / 60.0),
		now:        now,
	}
}
