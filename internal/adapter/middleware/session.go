package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"compras-backend/internal/domain/user"
	"compras-backend/pkg/id"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

var ErrNoSession = errors.New("no session for token")

// SessionStore caches the identity provider's resolved capability set per
// opaque token. The identity provider itself is external; this is only the
// cache the request path reads from.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

// Issue mints an opaque token for an already-resolved identity.
func (s *SessionStore) Issue(ctx context.Context, ident user.Identity) (string, error) {
	token := id.NewID32()
	payload, _ := json.Marshal(ident)
	if err := s.rdb.Set(ctx, sessionKeyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*user.Identity, error) {
	v, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	var ident user.Identity
	if err := json.Unmarshal(v, &ident); err != nil {
		return nil, err
	}
	return &ident, nil
}

func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+token).Err()
}
