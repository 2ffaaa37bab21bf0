package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
	"github.com/gigpayhq/gigpay/pkg/helpers"
	"github.com/gigpayhq/gigpay/pkg/response"
)

const profileHeader = "X-Profile-ID"

func profileCacheKey(id string) string {
	return "profile:" + id
}

// cachedProfile is the redis representation of a resolved profile. Balance
// is deliberately absent: it is shared mutable state and must always be read
// through the store.
type cachedProfile struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Profession string `json:"profession"`
	Email      string `json:"email"`
}

// ProfileAuth resolves the calling profile from the X-Profile-ID header and
// sets "profile", "profileID", and "profileType" in the Gin context.
// Lookups go through a redis cache when one is configured; the cache never
// holds balances.
func ProfileAuth(profiles repository.ProfileRepository, rdb *redis.Client, cacheTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(profileHeader)
		if id == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing profile id", nil)
			return
		}
		if _, err := uuid.Parse(id); err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid profile id", nil)
			return
		}

		ctx := c.Request.Context()

		if rdb != nil {
			var cached cachedProfile
			if ok, err := helpers.RedisGetJSON(ctx, rdb, profileCacheKey(id), &cached); err == nil && ok {
				setProfile(c, &entity.Profile{
					ID:         cached.ID,
					Type:       entity.ProfileType(cached.Type),
					FirstName:  cached.FirstName,
					LastName:   cached.LastName,
					Profession: cached.Profession,
					Email:      cached.Email,
				})
				c.Next()
				return
			}
		}

		p, err := profiles.GetByID(ctx, id)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "unknown profile", nil)
			return
		}

		if rdb != nil {
			_ = helpers.RedisSetJSON(ctx, rdb, profileCacheKey(id), cachedProfile{
				ID:         p.ID,
				Type:       string(p.Type),
				FirstName:  p.FirstName,
				LastName:   p.LastName,
				Profession: p.Profession,
				Email:      p.Email,
			}, cacheTTL)
		}

		setProfile(c, p)
		c.Next()
	}
}

func setProfile(c *gin.Context, p *entity.Profile) {
	c.Set("profile", p)
	c.Set("profileID", p.ID)
	c.Set("profileType", string(p.Type))
}

// ProfileFromCtx returns the profile resolved by ProfileAuth.
func ProfileFromCtx(c *gin.Context) (*entity.Profile, bool) {
	v, ok := c.Get("profile")
	if !ok {
		return nil, false
	}
	p, ok := v.(*entity.Profile)
	return p, ok
}
