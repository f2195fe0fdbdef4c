package redis_limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter 基于Redis的固定窗口尝试次数限制器
// 用于限制同一来源在时间窗口内的登录尝试次数
type RedisLimiter struct {
	client      *redis.Client
	maxAttempts int
	keyPrefix   string
	window      time.Duration
}

// NewRedisLimiter 创建基于Redis的尝试次数限制器
func NewRedisLimiter(client *redis.Client, maxAttempts int, keyPrefix string, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		keyPrefix:   keyPrefix,
		window:      window,
	}
}

// Allow 记录一次尝试并判断是否放行
// 使用Lua脚本保证计数与过期时间设置的原子性：
// 首次尝试创建计数键并设置窗口过期时间，之后只递增，
// 计数超过上限即拒绝，窗口过期后自动重置
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rl.keyPrefix + key

	script := redis.NewScript(
		`local count = redis.call('INCR', KEYS[1])
		if count == 1 then
			redis.call('EXPIRE', KEYS[1], tonumber(ARGV[2]))
		end

		if count > tonumber(ARGV[1]) then
			return 0
		end
		return 1`,
	)

	result, err := script.Run(ctx, rl.client, []string{redisKey}, rl.maxAttempts, int(rl.window.Seconds())).Result()
	if err != nil {
		return false, fmt.Errorf("执行Lua脚本失败: %w", err)
	}

	return result.(int64) == 1, nil
}

// Reset 清除某个来源的计数（登录成功后调用）
func (rl *RedisLimiter) Reset(ctx context.Context, key string) error {
	return rl.client.Del(ctx, rl.keyPrefix+key).Err()
}
