package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webstore-labs/product-store/internal/events"
	"github.com/webstore-labs/product-store/internal/service"
	"github.com/webstore-labs/product-store/internal/transport"
	"github.com/webstore-labs/product-store/pkg/logging"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	items, err := h.Svc.GetCart(ctx, cartID(c))
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list cart items")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"total_items": service.TotalItemCount(items),
			"total_price": service.TotalPrice(items),
		},
	})
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddToCart(ctx, cartID(c), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "product_id and a positive quantity are required")
		}
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("add_to_cart_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		if errors.Is(err, service.ErrConflict) {
			l.Warn("add_to_cart_error", "status", 409, "error", err)
			return echo.NewHTTPError(http.StatusConflict, "cart line already exists, retry")
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add product to cart")
	}

	publish(c, h.Producer, events.CartTopic, item.CartID, map[string]any{
		"type":       "cart_item_added",
		"cart_id":    item.CartID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})

	l.Info("add_to_cart_success", "cart_id", item.CartID, "product_id", item.ProductID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_cart_item")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_cart_item_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.UpdateQuantity(ctx, cartID(c), id, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("update_cart_item_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "quantity must be positive")
		}
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_cart_item_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		l.Error("update_cart_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update cart item")
	}

	publish(c, h.Producer, events.CartTopic, item.CartID, map[string]any{
		"type":     "cart_item_updated",
		"cart_id":  item.CartID,
		"line_id":  item.ID,
		"quantity": item.Quantity,
	})

	l.Info("update_cart_item_success", "cart_id", item.CartID, "line_id", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) DeleteCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete_cart_item")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_cart_item_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.RemoveFromCart(ctx, cartID(c), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_cart_item_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		l.Error("delete_cart_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot remove cart item")
	}

	publish(c, h.Producer, events.CartTopic, cartID(c), map[string]any{
		"type":    "cart_item_removed",
		"cart_id": cartID(c),
		"line_id": id,
	})

	l.Info("delete_cart_item_success", "cart_id", cartID(c), "line_id", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "item removed from cart"})
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear_cart")

	if err := h.Svc.ClearCart(ctx, cartID(c)); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot clear cart")
	}

	publish(c, h.Producer, events.CartTopic, cartID(c), map[string]any{
		"type":    "cart_cleared",
		"cart_id": cartID(c),
	})

	l.Info("clear_cart_success", "cart_id", cartID(c))
	return c.JSON(http.StatusOK, map[string]string{"message": "cart cleared"})
}
