package handler

import (
	"net/http"

	"msistore/internal/config"
	"msistore/internal/middleware"
	"msistore/internal/usecase"

	"github.com/labstack/echo/v4"
)

type LikeHandler struct {
	likeUC *usecase.LikeUsecase
}

func NewLikeHandler(likeUC *usecase.LikeUsecase) *LikeHandler {
	return &LikeHandler{likeUC: likeUC}
}

func (h *LikeHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/like")
	g.Use(middleware.AuthJWT(cfg))
	g.GET("", h.list)
	g.POST("", h.create)
}

func (h *LikeHandler) list(c echo.Context) error {
	out, err := h.likeUC.List(c.Request().Context(), pagingFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type createLikeRequest struct {
	ProductID int64 `json:"product"`
}

func (h *LikeHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req createLikeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.likeUC.Create(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
