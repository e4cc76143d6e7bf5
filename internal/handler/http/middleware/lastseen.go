package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/haneco/timesheet-backend-go/internal/domain/user"
)

// LastSeenTracker buffers per-user activity timestamps in memory so the
// hot request path never waits on a write. A cron job flushes the buffer
// to the users table.
type LastSeenTracker struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func NewLastSeenTracker() *LastSeenTracker {
	return &LastSeenTracker{seen: make(map[string]time.Time)}
}

// Middleware records the authenticated user on every request.
func (t *LastSeenTracker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := UserID(r); id != "" {
			t.mu.Lock()
			t.seen[id] = time.Now()
			t.mu.Unlock()
		}
		next.ServeHTTP(w, r)
	})
}

// Flush writes the buffered timestamps and resets the buffer.
func (t *LastSeenTracker) Flush(ctx context.Context, repo user.UserRepository) {
	t.mu.Lock()
	batch := t.seen
	t.seen = make(map[string]time.Time)
	t.mu.Unlock()

	for id, at := range batch {
		if err := repo.TouchLastSeen(ctx, id, at); err != nil {
			slog.Error("failed to flush last seen",
				slog.String("user_id", id),
				slog.Any("error", err))
		}
	}
}
