package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webstore-labs/product-store/pkg/logging"
	"github.com/webstore-labs/product-store/pkg/unsplash"
)

type ImagesHTTP struct {
	Client *unsplash.Client
}

// SearchImages proxies the image provider so product forms can pick an image
// reference without exposing the access key to the browser.
func (h *ImagesHTTP) SearchImages(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "images.search")

	query := c.QueryParam("q")
	if query == "" {
		l.Warn("search_images_error", "status", 400, "reason", "empty query")
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	images, err := h.Client.SearchPhotos(ctx, query, 12)
	if err != nil {
		l.Error("search_images_error", "status", 502, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "image search failed")
	}

	return c.JSON(http.StatusOK, map[string]any{"data": images})
}
