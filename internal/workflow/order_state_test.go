package workflow

import (
	"testing"

	"farm-storefront/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		actor   Actor
		wantErr error
	}{
		{"staff force pending to on_way", entity.OrderStatusPending, entity.OrderStatusOnWay, ActorStaff, nil},
		{"staff cancel assigned", entity.OrderStatusAssigned, entity.OrderStatusCancelled, ActorStaff, nil},
		{"staff back to pending", entity.OrderStatusOnWay, entity.OrderStatusPending, ActorStaff, nil},
		{"staff out of delivered", entity.OrderStatusDelivered, entity.OrderStatusPending, ActorStaff, ErrInvalidTransition},
		{"staff out of cancelled", entity.OrderStatusCancelled, entity.OrderStatusAssigned, ActorStaff, ErrInvalidTransition},
		{"staff same status", entity.OrderStatusPending, entity.OrderStatusPending, ActorStaff, ErrInvalidTransition},
		{"driver leaves for delivery", entity.OrderStatusAssigned, entity.OrderStatusOnWay, ActorDelivery, nil},
		{"driver sets delivered directly", entity.OrderStatusOnWay, entity.OrderStatusDelivered, ActorDelivery, ErrOTPRequired},
		{"driver skips on_way", entity.OrderStatusAssigned, entity.OrderStatusDelivered, ActorDelivery, ErrInvalidTransition},
		{"driver cancels on_way", entity.OrderStatusOnWay, entity.OrderStatusCancelled, ActorDelivery, nil},
		{"driver cancels assigned", entity.OrderStatusAssigned, entity.OrderStatusCancelled, ActorDelivery, nil},
		{"driver cancels pending", entity.OrderStatusPending, entity.OrderStatusCancelled, ActorDelivery, ErrInvalidTransition},
		{"driver out of cancelled", entity.OrderStatusCancelled, entity.OrderStatusOnWay, ActorDelivery, ErrInvalidTransition},
		{"customer cancels pending", entity.OrderStatusPending, entity.OrderStatusCancelled, ActorCustomer, nil},
		{"customer cancels assigned", entity.OrderStatusAssigned, entity.OrderStatusCancelled, ActorCustomer, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to, tt.actor)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCanTransitionMessageListsValidNextStates(t *testing.T) {
	err := CanTransition(entity.OrderStatusAssigned, entity.OrderStatusPending, ActorDelivery)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid transitions from assigned are: on_way, cancelled")

	err = CanTransition(entity.OrderStatusDelivered, entity.OrderStatusPending, ActorStaff)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "are: none")
}

func TestTerminalStatesHaveNoTransitions(t *testing.T) {
	for _, actor := range []Actor{ActorStaff, ActorDelivery, ActorCustomer} {
		assert.Empty(t, ValidTransitionsFrom(entity.OrderStatusDelivered, actor))
		assert.Empty(t, ValidTransitionsFrom(entity.OrderStatusCancelled, actor))
	}
}

func TestCanConfirmDelivery(t *testing.T) {
	assert.NoError(t, CanConfirmDelivery(entity.OrderStatusOnWay))
	assert.ErrorIs(t, CanConfirmDelivery(entity.OrderStatusAssigned), ErrInvalidTransition)
	assert.ErrorIs(t, CanConfirmDelivery(entity.OrderStatusDelivered), ErrInvalidTransition)
}

func TestCanRequestOTP(t *testing.T) {
	assert.NoError(t, CanRequestOTP(entity.OrderStatusAssigned))
	assert.NoError(t, CanRequestOTP(entity.OrderStatusOnWay))
	assert.ErrorIs(t, CanRequestOTP(entity.OrderStatusCancelled), ErrInvalidTransition)
}

func TestOptionsDisabledForTerminalStates(t *testing.T) {
	for _, status := range []entity.OrderStatus{entity.OrderStatusDelivered, entity.OrderStatusCancelled} {
		opts := Options(status, ActorStaff)
		require.Len(t, opts, 5)
		for _, opt := range opts {
			assert.True(t, opt.Disabled, "%s option should be disabled for %s order", opt.Value, status)
		}
	}
}

func TestOptionsForStaffPendingOrder(t *testing.T) {
	opts := Options(entity.OrderStatusPending, ActorStaff)
	require.Len(t, opts, 5)
	for _, opt := range opts {
		assert.False(t, opt.Disabled, opt.Value)
	}
	assert.True(t, opts[0].Selected)
}

func TestOptionsForDriver(t *testing.T) {
	opts := Options(entity.OrderStatusAssigned, ActorDelivery)
	got := map[entity.OrderStatus]bool{}
	for _, opt := range opts {
		got[opt.Value] = opt.Disabled
	}

	assert.Equal(t, map[entity.OrderStatus]bool{
		entity.OrderStatusAssigned:  false,
		entity.OrderStatusOnWay:     false,
		entity.OrderStatusCancelled: false,
	}, got)
	assert.Nil(t, Options(entity.OrderStatusPending, ActorCustomer))

	for _, opt := range Options(entity.OrderStatusCancelled, ActorDelivery) {
		assert.True(t, opt.Disabled, opt.Value)
	}
}
