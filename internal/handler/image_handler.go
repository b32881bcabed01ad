package handler

import (
	"net/http"

	"msistore/internal/config"
	"msistore/internal/middleware"
	"msistore/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ImageHandler struct {
	imageUC *usecase.ImageUsecase
}

func NewImageHandler(imageUC *usecase.ImageUsecase) *ImageHandler {
	return &ImageHandler{imageUC: imageUC}
}

func (h *ImageHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/image")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())
	g.POST("", h.create)
}

func (h *ImageHandler) create(c echo.Context) error {
	var req usecase.CreateImageInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.imageUC.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
