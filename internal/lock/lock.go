package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrLocked = errors.New("같은 달의 스케줄이 이미 생성 중입니다")

// 자신이 건 잠금일 때만 지운다
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// MonthLock 은 redis 의 SET NX 로 월 단위 생성 요청을 직렬화한다.
// 여러 병원의 스케줄이 서로의 사용 시간을 읽기 때문에 같은 달의 생성은 동시에 실행되면 안 된다.
type MonthLock struct {
	client  *redis.Client
	ttl     time.Duration
	timeout time.Duration
}

func NewMonthLock(client *redis.Client, ttl, timeout time.Duration) *MonthLock {
	return &MonthLock{
		client:  client,
		ttl:     ttl,
		timeout: timeout,
	}
}

func (l *MonthLock) Lock(key string) (func(), error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLocked
	}

	unlock := func() {
		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()

		// 실패해도 ttl 이 지나면 풀린다
		_ = releaseScript.Run(ctx, l.client, []string{key}, token).Err()
	}

	return unlock, nil
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
