package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webstore-labs/product-store/internal/models"
	"github.com/webstore-labs/product-store/internal/transport"
)

func TestCreateAndGetProduct(t *testing.T) {
	catalog, _, _ := newTestServices(t)
	ctx := context.Background()

	created, err := catalog.CreateProduct(ctx, productReq("Mug", 9.99, "https://img/mug"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := catalog.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Mug", got.Name)
	require.Equal(t, 9.99, got.Price)
	require.Equal(t, "https://img/mug", got.Image)
}

func TestCreateProductRoundsPrice(t *testing.T) {
	catalog, _, _ := newTestServices(t)

	created, err := catalog.CreateProduct(context.Background(), productReq("Lamp", 10.999, "https://img/lamp"))
	require.NoError(t, err)
	require.Equal(t, 11.00, created.Price)
}

func TestCreateProductValidation(t *testing.T) {
	catalog, _, db := newTestServices(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  transport.ProductRequest
	}{
		{"empty name", productReq("", 5, "https://img/x")},
		{"blank name", productReq("   ", 5, "https://img/x")},
		{"empty image", productReq("Mug", 5, "")},
		{"missing price", transport.ProductRequest{Name: "Mug", Image: "https://img/x"}},
		{"negative price", productReq("Mug", -1, "https://img/x")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.CreateProduct(ctx, tc.req)
			require.ErrorIs(t, err, ErrValidation)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateProductZeroPriceAllowed(t *testing.T) {
	catalog, _, _ := newTestServices(t)

	created, err := catalog.CreateProduct(context.Background(), productReq("Freebie", 0, "https://img/free"))
	require.NoError(t, err)
	require.Equal(t, 0.0, created.Price)
}

func TestGetProductNotFound(t *testing.T) {
	catalog, _, _ := newTestServices(t)

	_, err := catalog.GetProduct(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetProductsNewestFirst(t *testing.T) {
	catalog, _, _ := newTestServices(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := catalog.CreateProduct(ctx, productReq(name, 1, "https://img/"+name))
		require.NoError(t, err)
	}

	items, err := catalog.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "third", items[0].Name)
	require.Equal(t, "second", items[1].Name)
	require.Equal(t, "first", items[2].Name)
}

func TestUpdateProductFullReplace(t *testing.T) {
	catalog, _, _ := newTestServices(t)
	ctx := context.Background()

	created, err := catalog.CreateProduct(ctx, productReq("Mug", 9.99, "https://img/mug"))
	require.NoError(t, err)

	updated, err := catalog.UpdateProduct(ctx, created.ID, productReq("Big Mug", 12.50, "https://img/big-mug"))
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Big Mug", updated.Name)
	require.Equal(t, 12.50, updated.Price)
	require.Equal(t, "https://img/big-mug", updated.Image)

	_, err = catalog.UpdateProduct(ctx, created.ID, productReq("", 12.50, "https://img/big-mug"))
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProductNotFound(t *testing.T) {
	catalog, _, _ := newTestServices(t)

	_, err := catalog.UpdateProduct(context.Background(), 42, productReq("Mug", 9.99, "https://img/mug"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	catalog, _, _ := newTestServices(t)
	ctx := context.Background()

	created, err := catalog.CreateProduct(ctx, productReq("Mug", 9.99, "https://img/mug"))
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteProduct(ctx, created.ID))

	_, err = catalog.GetProduct(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, catalog.DeleteProduct(ctx, created.ID), ErrNotFound)
}

func TestDeleteProductNotFoundLeavesListUnchanged(t *testing.T) {
	catalog, _, _ := newTestServices(t)
	ctx := context.Background()

	_, err := catalog.CreateProduct(ctx, productReq("Mug", 9.99, "https://img/mug"))
	require.NoError(t, err)

	require.ErrorIs(t, catalog.DeleteProduct(ctx, 42), ErrNotFound)

	items, err := catalog.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestDeleteProductCascadesCartLines(t *testing.T) {
	catalog, cart, _ := newTestServices(t)
	ctx := context.Background()

	created, err := catalog.CreateProduct(ctx, productReq("Mug", 9.99, "https://img/mug"))
	require.NoError(t, err)

	_, err = cart.AddToCart(ctx, "default", created.ID, 2)
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteProduct(ctx, created.ID))

	items, err := cart.GetCart(ctx, "default")
	require.NoError(t, err)
	require.Empty(t, items)
}
