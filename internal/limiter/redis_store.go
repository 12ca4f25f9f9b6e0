package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisStore keeps window counters in Redis so several API instances share
// one budget per client.
type RedisStore struct {
	client rueidis.Client
	prefix string
	now    func() time.Time
}

func NewRedisStore(client rueidis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: keyPrefix,
		now:    time.Now,
	}
}

func (r *RedisStore) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	windowStart := r.now().UnixMilli() / window.Milliseconds()
	redisKey := fmt.Sprintf("%s:%s:%d", r.prefix, key, windowStart)

	resps := r.client.DoMulti(
		ctx,
		r.client.B().Incr().Key(redisKey).Build(),
		r.client.B().Pexpire().Key(redisKey).Milliseconds(window.Milliseconds()).Nx().Build(),
	)

	count, err := resps[0].AsInt64()
	if err != nil {
		return 0, err
	}
	if err := resps[1].Error(); err != nil {
		return 0, err
	}

	return count, nil
}
