package handler

import (
	"net/http"
	"strconv"

	"msistore/internal/config"
	"msistore/internal/middleware"
	"msistore/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	categoryUC *usecase.CategoryUsecase
	brandUC    *usecase.BrandUsecase
}

func NewCategoryHandler(categoryUC *usecase.CategoryUsecase, brandUC *usecase.BrandUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC, brandUC: brandUC}
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	//カタログ系の参照は誰でも可
	e.GET("/category", h.listCategories)
	e.GET("/category/:id", h.getCategory)
	e.GET("/brand", h.listBrands)

	adminCat := e.Group("/category")
	adminCat.Use(middleware.AuthJWT(cfg))
	adminCat.Use(middleware.AdminRoleGuard())
	adminCat.POST("", h.createCategory)

	adminBrand := e.Group("/brand")
	adminBrand.Use(middleware.AuthJWT(cfg))
	adminBrand.Use(middleware.AdminRoleGuard())
	adminBrand.POST("", h.createBrand)
}

func (h *CategoryHandler) listCategories(c echo.Context) error {
	out, err := h.categoryUC.List(c.Request().Context(), pagingFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) getCategory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.categoryUC.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type createNameRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) createCategory(c echo.Context) error {
	var req createNameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.categoryUC.Create(c.Request().Context(), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CategoryHandler) listBrands(c echo.Context) error {
	out, err := h.brandUC.List(c.Request().Context(), pagingFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) createBrand(c echo.Context) error {
	var req createNameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.brandUC.Create(c.Request().Context(), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
