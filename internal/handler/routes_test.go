package handler_test

import (
	"testing"

	"msistore/internal/config"
	"msistore/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// =====================
// ルートのパス名
// =====================

// カタログ系リソースは単数形のパスで公開する
func TestCatalogRoutePathsAreSingular(t *testing.T) {
	e := echo.New()
	cfg := config.Config{JWTSecret: "test-secret"}

	handler.NewCategoryHandler(nil, nil).RegisterRoutes(e, cfg)
	handler.NewImageHandler(nil).RegisterRoutes(e, cfg)
	handler.NewLikeHandler(nil).RegisterRoutes(e, cfg)

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /category",
		"GET /category/:id",
		"POST /category",
		"GET /brand",
		"POST /brand",
		"POST /image",
		"GET /like",
		"POST /like",
	} {
		assert.True(t, registered[want], "route %s should be registered", want)
	}

	for _, stale := range []string{
		"GET /categories",
		"GET /brands",
		"POST /images",
		"GET /likes",
	} {
		assert.False(t, registered[stale], "route %s should not exist", stale)
	}
}
