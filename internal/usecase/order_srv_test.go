package usecase

import (
	"net/http"
	"testing"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCancelOnlyFromPending(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleCustomer)
	d.up.JSON(http.MethodGet, "/orders/customer/orders/", http.StatusOK, []any{
		order(1, entity.OrderStatusPending),
		order(2, entity.OrderStatusAssigned),
	})
	d.up.JSON(http.MethodDelete, "/orders/cancel/1/", http.StatusOK, map[string]any{"message": "Order cancelled"})

	resp, err := d.svc.Order.Cancel(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, resp.Status)
	assert.Equal(t, "Order cancelled", resp.Message)

	_, err = d.svc.Order.Cancel(ctx, 2)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, d.up.Count(http.MethodDelete, "/orders/cancel/2/"))

	_, err = d.svc.Order.Cancel(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerOrderListFlagsCancellable(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleCustomer)
	d.up.JSON(http.MethodGet, "/orders/customer/orders/", http.StatusOK, []any{
		order(1, entity.OrderStatusPending),
		order(2, entity.OrderStatusDelivered),
	})

	orders, err := d.svc.Order.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.True(t, orders[0].CanCancel)
	assert.False(t, orders[1].CanCancel)
}

func TestPlaceOrderRejectsBadQuantity(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleCustomer)

	_, err := d.svc.Order.Place(ctx, &request.PlaceOrderRequest{Items: []request.AddToCartRequest{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 0},
	}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = d.svc.Order.Place(ctx, &request.PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, d.up.Requests())
}
