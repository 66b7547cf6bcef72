package usecase

import (
	"net/http"
	"testing"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/dto/request"
	"farm-storefront/pkg/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func driverOrders(d *testDeps) {
	d.up.JSON(http.MethodGet, "/orders/delivery/orders/", http.StatusOK, []any{
		order(1, entity.OrderStatusAssigned),
		order(2, entity.OrderStatusOnWay),
		order(3, entity.OrderStatusDelivered),
		order(4, entity.OrderStatusCancelled),
	})
}

func TestDeliveryListDefaultsToActiveOrders(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleDelivery)
	driverOrders(d)

	resp, err := d.svc.Delivery.ListOrders(ctx, &request.DeliveryFilter{})
	require.NoError(t, err)
	assert.Equal(t, []entity.OrderStatus{entity.OrderStatusAssigned, entity.OrderStatusOnWay}, resp.Filter)
	require.Len(t, resp.Orders, 2)
	assert.Equal(t, int64(1), resp.Orders[0].ID)
	assert.Equal(t, int64(2), resp.Orders[1].ID)

	resp, err = d.svc.Delivery.ListOrders(ctx, &request.DeliveryFilter{Statuses: []entity.OrderStatus{entity.OrderStatusDelivered}})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, int64(3), resp.Orders[0].ID)
	assert.False(t, resp.Orders[0].CanRequestOTP)
}

func TestDeliveryCannotSetDeliveredWithoutOTP(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleDelivery)
	driverOrders(d)

	_, err := d.svc.Delivery.UpdateStatus(ctx, 2, &request.UpdateStatusRequest{Status: entity.OrderStatusDelivered})
	assert.ErrorIs(t, err, ErrOTPRequired)
	assert.Equal(t, 0, d.up.Count(http.MethodPatch, "/orders/delivery/update/order/2/"))
}

func TestDeliveryLeavesForDelivery(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleDelivery)
	driverOrders(d)
	d.up.JSON(http.MethodPatch, "/orders/delivery/update/order/1/", http.StatusOK, map[string]any{})

	resp, err := d.svc.Delivery.UpdateStatus(ctx, 1, &request.UpdateStatusRequest{Status: entity.OrderStatusOnWay})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusOnWay, resp.Status)
}

func TestDeliveryCancelsAssignedOrder(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleDelivery)
	driverOrders(d)
	d.up.JSON(http.MethodPatch, "/orders/delivery/update/order/1/", http.StatusOK, map[string]any{})

	resp, err := d.svc.Delivery.UpdateStatus(ctx, 1, &request.UpdateStatusRequest{Status: entity.OrderStatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, resp.Status)
}

func TestConfirmEmptyOTPRejectedLocally(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleDelivery)

	_, err := d.svc.Delivery.ConfirmOTP(ctx, 2, &request.ConfirmOTPRequest{OTP: "  "})
	require.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "Enter OTP")
	assert.Empty(t, d.up.Requests())
}

func TestConfirmWrongOTPLeavesStatus(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleDelivery)
	driverOrders(d)
	d.up.JSON(http.MethodPost, "/orders/delivery/confirm_otp/2/", http.StatusBadRequest, map[string]any{"error": "Invalid OTP"})

	resp, err := d.svc.Delivery.ConfirmOTP(ctx, 2, &request.ConfirmOTPRequest{OTP: "0000"})
	require.Error(t, err)
	assert.Nil(t, resp)

	apiErr, ok := upstream.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid OTP", apiErr.Message)

	list, err := d.svc.Delivery.ListOrders(ctx, &request.DeliveryFilter{})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusOnWay, list.Orders[1].Status)
}

func TestConfirmOTPOnlyWhileOnWay(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleDelivery)
	driverOrders(d)

	_, err := d.svc.Delivery.ConfirmOTP(ctx, 1, &request.ConfirmOTPRequest{OTP: "1234"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = d.svc.Delivery.RequestOTP(ctx, 4)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, d.up.Count(http.MethodPost, "/orders/delivery/generate_otp/4/"))
}

func TestConfirmOTPDelivers(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleDelivery)
	driverOrders(d)
	d.up.JSON(http.MethodPost, "/orders/delivery/confirm_otp/2/", http.StatusOK, map[string]any{"message": "Order delivered"})

	resp, err := d.svc.Delivery.ConfirmOTP(ctx, 2, &request.ConfirmOTPRequest{OTP: "123456"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, resp.Status)
	assert.Equal(t, "Order delivered", resp.Message)
}

func TestDeliveryOrderOfAnotherDriver(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleDelivery)
	driverOrders(d)

	_, err := d.svc.Delivery.RequestOTP(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
