package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/internal/interface/middleware"
)

type stubProfileRepo struct {
	profile *entity.Profile
	err     error
	calls   int
}

func (s *stubProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func (s *stubProfileRepo) DebitIfSufficient(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	return false, errors.New("not implemented")
}

func (s *stubProfileRepo) Credit(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	return false, errors.New("not implemented")
}

func (s *stubProfileRepo) UpdateAvatarURL(ctx context.Context, id, url string) error {
	return errors.New("not implemented")
}

func newProfileRouter(repo *stubProfileRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ProfileAuth(repo, nil, time.Minute))
	r.GET("/whoami", func(c *gin.Context) {
		p, ok := middleware.ProfileFromCtx(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no profile in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "type": string(p.Type)})
	})
	return r
}

func TestProfileAuth_ResolvesProfile(t *testing.T) {
	id := uuid.New().String()
	repo := &stubProfileRepo{profile: &entity.Profile{ID: id, Type: entity.ProfileTypeClient}}
	r := newProfileRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Profile-ID", id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if repo.calls != 1 {
		t.Errorf("expected one store lookup, got %d", repo.calls)
	}
}

func TestProfileAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		repo   *stubProfileRepo
	}{
		{name: "missing header", header: "", repo: &stubProfileRepo{}},
		{name: "malformed id", header: "not-a-uuid", repo: &stubProfileRepo{}},
		{name: "unknown profile", header: uuid.New().String(), repo: &stubProfileRepo{err: errors.New("no rows")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newProfileRouter(tt.repo)
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("X-Profile-ID", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}
