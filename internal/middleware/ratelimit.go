package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/prem7151/Kashtex-Agency/internal/httperr"
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimit is a fixed-window per-IP limiter for the public write endpoints.
// It fails open: when Redis is unconfigured or unreachable the request goes
// through, limiting is protection for the site, not a gate in front of it.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := "rl:" + c.ClientIP() + ":" + c.FullPath()

		res, err := fixedWindowScript.Run(
			c.Request.Context(),
			rdb,
			[]string{key},
			window.Milliseconds(),
		).Int64()
		if err != nil {
			log.Println("rate limiter error:", err)
			c.Next()
			return
		}

		if res > int64(limit) {
			httperr.TooManyRequests(c, "rate_limited", "Too many requests. Please try again shortly.")
			c.Abort()
			return
		}

		c.Next()
	}
}
