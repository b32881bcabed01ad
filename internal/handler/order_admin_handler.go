package handler

import (
	"net/http"
	"strconv"

	"msistore/internal/config"
	"msistore/internal/middleware"
	"msistore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /order-item と /status-order の汎用ルート（管理者のみ）
type OrderAdminHandler struct {
	itemUC   *usecase.OrderItemUsecase
	statusUC *usecase.StatusOrderUsecase
}

func NewOrderAdminHandler(itemUC *usecase.OrderItemUsecase, statusUC *usecase.StatusOrderUsecase) *OrderAdminHandler {
	return &OrderAdminHandler{itemUC: itemUC, statusUC: statusUC}
}

func (h *OrderAdminHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	items := e.Group("/order-item")
	items.Use(middleware.AuthJWT(cfg))
	items.Use(middleware.AdminRoleGuard())
	items.GET("", h.listItems)
	items.POST("", h.createItem)
	items.GET("/:id", h.getItem)
	items.PUT("/:id", h.updateItem)

	statuses := e.Group("/status-order")
	statuses.Use(middleware.AuthJWT(cfg))
	statuses.Use(middleware.AdminRoleGuard())
	statuses.GET("", h.listStatuses)
	statuses.POST("", h.createStatus)
	statuses.GET("/:id", h.getStatus)
	statuses.PUT("/:id", h.updateStatus)
}

func (h *OrderAdminHandler) listItems(c echo.Context) error {
	out, err := h.itemUC.List(c.Request().Context(), pagingFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderAdminHandler) getItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.itemUC.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type createOrderItemRequest struct {
	OrderID   int64 `json:"order"`
	ProductID int64 `json:"product"`
	Quantity  int64 `json:"quantity"`
}

func (h *OrderAdminHandler) createItem(c echo.Context) error {
	var req createOrderItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.itemUC.Create(c.Request().Context(), req.OrderID, req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

type updateOrderItemRequest struct {
	ProductID int64 `json:"product"`
	Quantity  int64 `json:"quantity"`
}

func (h *OrderAdminHandler) updateItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req updateOrderItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.itemUC.Update(c.Request().Context(), id, req.ProductID, req.Quantity); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderAdminHandler) listStatuses(c echo.Context) error {
	out, err := h.statusUC.List(c.Request().Context(), pagingFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type createStatusRequest struct {
	OrderID int64 `json:"order"`
	usecase.OrderStatusInput
}

func (h *OrderAdminHandler) createStatus(c echo.Context) error {
	var req createStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.statusUC.Create(c.Request().Context(), req.OrderID, req.OrderStatusInput)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderAdminHandler) getStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.statusUC.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderAdminHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.OrderStatusInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.statusUC.Update(c.Request().Context(), id, req); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
