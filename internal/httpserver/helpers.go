package httpserver

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/webstore-labs/product-store/internal/events"
	"github.com/webstore-labs/product-store/pkg/logging"
)

const (
	cartIDHeader  = "X-Cart-ID"
	defaultCartID = "default"
)

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func cartID(c echo.Context) string {
	if id := c.Request().Header.Get(cartIDHeader); id != "" {
		return id
	}
	return defaultCartID
}

// publish sends a domain event best-effort; delivery failures are logged and
// never fail the request.
func publish(c echo.Context, p *events.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "topic", topic, "error", err)
	}
}
