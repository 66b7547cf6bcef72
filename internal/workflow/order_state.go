// Package workflow holds the order status transition table. The upstream is
// the authority; this table only stops requests the UI would have disabled.
package workflow

import (
	"errors"
	"fmt"
	"strings"

	"farm-storefront/internal/data/entity"
)

type Actor string

const (
	ActorStaff    Actor = "staff"
	ActorDelivery Actor = "delivery"
	ActorCustomer Actor = "customer"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrOTPRequired is returned when a driver tries to set delivered
	// directly instead of going through the OTP confirmation.
	ErrOTPRequired = errors.New("delivery must be confirmed with the customer's OTP")
)

// Transition is one permitted status change for one actor.
type Transition struct {
	From        entity.OrderStatus
	To          entity.OrderStatus
	Actor       Actor
	RequiresOTP bool
}

// transitions is built once: staff may force any non-terminal order to any
// other status, the rest are listed by hand.
var transitions = func() []Transition {
	var ts []Transition
	for _, from := range entity.OrderStatuses {
		if from.Terminal() {
			continue
		}
		for _, to := range entity.OrderStatuses {
			if to != from {
				ts = append(ts, Transition{From: from, To: to, Actor: ActorStaff})
			}
		}
	}
	return append(ts,
		Transition{From: entity.OrderStatusAssigned, To: entity.OrderStatusOnWay, Actor: ActorDelivery},
		Transition{From: entity.OrderStatusOnWay, To: entity.OrderStatusDelivered, Actor: ActorDelivery, RequiresOTP: true},
		Transition{From: entity.OrderStatusAssigned, To: entity.OrderStatusCancelled, Actor: ActorDelivery},
		Transition{From: entity.OrderStatusOnWay, To: entity.OrderStatusCancelled, Actor: ActorDelivery},
		Transition{From: entity.OrderStatusPending, To: entity.OrderStatusCancelled, Actor: ActorCustomer},
	)
}()

type transitionKey struct {
	From  entity.OrderStatus
	To    entity.OrderStatus
	Actor Actor
}

var transitionMap = func() map[transitionKey]Transition {
	m := make(map[transitionKey]Transition, len(transitions))
	for _, t := range transitions {
		m[transitionKey{t.From, t.To, t.Actor}] = t
	}
	return m
}()

// ValidTransitionsFrom lists the statuses actor can move an order to from
// status, OTP-gated ones included.
func ValidTransitionsFrom(status entity.OrderStatus, actor Actor) []entity.OrderStatus {
	var nexts []entity.OrderStatus
	for _, t := range transitions {
		if t.From == status && t.Actor == actor {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition reports whether actor may set from -> to with a plain status
// update. OTP-gated transitions return ErrOTPRequired.
func CanTransition(from, to entity.OrderStatus, actor Actor) error {
	t, ok := transitionMap[transitionKey{from, to, actor}]
	if !ok {
		return fmt.Errorf("%w: %s -> %s is not allowed for %s; valid transitions from %s are: %s",
			ErrInvalidTransition, from, to, actor, from, describeValidFrom(from, actor))
	}
	if t.RequiresOTP {
		return ErrOTPRequired
	}
	return nil
}

// CanConfirmDelivery reports whether an OTP confirmation may be submitted for
// an order currently in status.
func CanConfirmDelivery(status entity.OrderStatus) error {
	if _, ok := transitionMap[transitionKey{status, entity.OrderStatusDelivered, ActorDelivery}]; ok {
		return nil
	}
	return fmt.Errorf("%w: cannot confirm delivery of an order that is %s", ErrInvalidTransition, status)
}

// CanRequestOTP holds for every order still in progress.
func CanRequestOTP(status entity.OrderStatus) error {
	if status.Terminal() {
		return fmt.Errorf("%w: order is already %s", ErrInvalidTransition, status)
	}
	return nil
}

func describeValidFrom(status entity.OrderStatus, actor Actor) string {
	nexts := ValidTransitionsFrom(status, actor)
	if len(nexts) == 0 {
		return "none"
	}
	parts := make([]string, len(nexts))
	for i, s := range nexts {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
