package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "roamly/database/repository/user"
	"roamly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware authenticates requests with a Bearer JWT and stores
// the requester's id under "userID" in the Gin context. A Redis cache of
// token hashes skips the user lookup on repeat requests; on a cache miss the
// user record is verified to still exist.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		ctx := context.Background()
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && cachedHash == computedHash {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("userID", userID)
				c.Next()
				return
			}
			if err != nil && err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, falling back to DB",
					zap.Error(err))
			}
		}

		// Cache miss or stale hash: the signature already checked out, so it
		// is enough to confirm the account still exists.
		usr, err := repo.GetByID(userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication error"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Next()
	}
}
