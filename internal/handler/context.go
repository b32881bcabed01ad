package handler

import (
	"msistore/internal/middleware"
	"msistore/internal/pagination"

	"github.com/labstack/echo/v4"
)

// AuthJWTが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	raw := c.Get(middleware.CtxUserIDKey)
	id, ok := raw.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// AuthJWTが入れたroleを取り出す
func getUserRoleFromContext(c echo.Context) string {
	raw := c.Get(middleware.CtxUserRoleKey)
	role, _ := raw.(string)
	return role
}

// page/page_size/limitをクエリから解釈する
func pagingFromQuery(c echo.Context) pagination.Params {
	return pagination.Parse(
		c.QueryParam("page"),
		c.QueryParam("page_size"),
		c.QueryParam("limit"),
	)
}
