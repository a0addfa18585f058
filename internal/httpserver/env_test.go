package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/webstore-labs/product-store/internal/events"
	"github.com/webstore-labs/product-store/internal/models"
	"github.com/webstore-labs/product-store/internal/repo"
	"github.com/webstore-labs/product-store/internal/service"
	"github.com/webstore-labs/product-store/pkg/unsplash"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	P  *ProductHTTP
	C  *CartHTTP
	I  *ImagesHTTP
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := &repo.GormRepo{DB: db}
	producer := events.NewProducer(nil)

	return &testEnv{
		T:  t,
		E:  echo.New(),
		P:  &ProductHTTP{Svc: &service.CatalogService{Repo: r}, Producer: producer},
		C:  &CartHTTP{Svc: &service.CartService{Repo: r}, Producer: producer},
		I:  &ImagesHTTP{Client: unsplash.NewClient("")},
		DB: db,
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}, headers ...http.Header) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, h := range headers {
		for k, vs := range h {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createProduct(name string, price float64, image string) models.Product {
	rec, c := env.doJSONRequest(http.MethodPost, "/api/products", map[string]any{
		"name":  name,
		"price": price,
		"image": image,
	})
	require.NoError(env.T, env.P.CreateProduct(c))
	require.Equal(env.T, http.StatusCreated, rec.Code)

	var prod models.Product
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &prod))
	return prod
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
}
