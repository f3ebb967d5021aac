// Package lock provides a Redis-backed advisory lock that serializes
// quota evaluation with the resource creation it guards.
package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	quotaLockPrefix = "quota:lock:"
	// Lock TTL bounds the hold time if a holder dies mid-request.
	quotaLockTTL = 10 * time.Second
)

// releaseScript deletes the lock only when the caller still holds it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// QuotaLock serializes check-then-create sequences per owner and resource
// kind so two concurrent requests cannot both pass the same quota check.
type QuotaLock struct {
	client *redis.Client
}

func NewQuotaLock(client *redis.Client) *QuotaLock {
	return &QuotaLock{client: client}
}

// Acquire takes the lock for (ownerID, kind). It returns a release function
// on success and an error when the lock is already held or Redis fails.
func (l *QuotaLock) Acquire(ctx context.Context, ownerID uint, kind string) (func(), error) {
	key := fmt.Sprintf("%s%d:%s", quotaLockPrefix, ownerID, kind)

	tokenBytes := make([]byte, 16)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, fmt.Errorf("failed to generate lock token: %w", err)
	}
	token := hex.EncodeToString(tokenBytes)

	ok, err := l.client.SetNX(ctx, key, token, quotaLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire quota lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("quota lock for owner %d kind %s is held", ownerID, kind)
	}

	release := func() {
		// best-effort; the TTL cleans up if this fails
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err()
	}
	return release, nil
}
