package usecase

import (
	"net/http"
	"sync/atomic"
	"testing"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkPaid(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleAdmin)

	var paid atomic.Bool
	d.up.Router.Get("/payments/api/payments/", func(w http.ResponseWriter, r *http.Request) {
		status := "pending"
		if paid.Load() {
			status = "paid"
		}
		testutil.WriteJSON(w, http.StatusOK, []any{
			map[string]any{"id": 1, "driver": "arjun", "related_order": 12, "amount": "40.00", "status": status},
			map[string]any{"id": 2, "driver": "arjun", "related_order": 13, "amount": "35.00", "status": "paid"},
		})
	})
	d.up.Router.Post("/payments/api/payments/{id}/mark_paid/", func(w http.ResponseWriter, r *http.Request) {
		paid.Store(true)
		testutil.WriteJSON(w, http.StatusOK, map[string]any{"message": "Payment marked as paid"})
	})

	list, err := d.svc.Payment.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].CanMarkPaid)
	assert.False(t, list[1].CanMarkPaid)
	assert.Equal(t, int64(12), list[0].RelatedOrder)

	resp, err := d.svc.Payment.MarkPaid(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, resp.Status)
	assert.False(t, resp.CanMarkPaid)

	_, err = d.svc.Payment.MarkPaid(ctx, 2)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 1, d.up.Count(http.MethodPost, "/payments/api/payments/1/mark_paid/"))
	assert.Equal(t, 0, d.up.Count(http.MethodPost, "/payments/api/payments/2/mark_paid/"))
}

func TestDeliveryEarnings(t *testing.T) {
	d := newTestDeps(t)
	ctx, _ := d.sessionCtx(t, entity.RoleDelivery)
	d.up.JSON(http.MethodGet, "/payments/delivery-earnings/", http.StatusOK, map[string]any{
		"total_earnings": "75.00", "total_paid": "35.00", "total_pending": "40.00",
	})

	earnings, err := d.svc.Delivery.Earnings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "75", earnings.TotalEarnings.String())
	assert.NotNil(t, earnings.Payments)
}
