package middleware

import (
	"net/http"
	"os"
	"strconv"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

func keyFunc(c *gin.Context) string {
	user := ExtractUser(c)
	if user.ID == 0 {
		return "ip: " + c.ClientIP()
	}
	return "user: " + strconv.FormatInt(user.ID, 10)
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.Header("Retry-After", time.Until(info.ResetTime).Round(time.Second).String())
	c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
	c.Abort()
}

// RateLimiterMiddleware caps requests per second per user (or IP before
// login). Applied to the auth form posts.
func RateLimiterMiddleware(reqPerSec uint) gin.HandlerFunc {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: reqPerSec,
	})

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc,
		ErrorHandler: errorHandler,
	})
}

// EnvRateLimitMiddleware reads RATE_LIMIT_REQUESTS_PER_SECOND, defaulting
// to 5 when unset or invalid.
func EnvRateLimitMiddleware() gin.HandlerFunc {
	rateLimitInt, err := strconv.Atoi(os.Getenv("RATE_LIMIT_REQUESTS_PER_SECOND"))
	if err != nil || rateLimitInt <= 0 {
		rateLimitInt = 5
	}
	return RateLimiterMiddleware(uint(rateLimitInt))
}
