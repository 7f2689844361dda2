// Package lifecycle holds the order state machine as pure logic,
// independent of storage and transport.
package lifecycle

import (
	"gigflow_backend/internal/models"
	"gigflow_backend/pkg/apperrors"
)

// transitions maps each status to the set of statuses reachable from it.
// Terminal statuses map to an empty set.
var transitions = map[models.OrderStatus]map[models.OrderStatus]struct{}{
	models.OrderStatusPending: {
		models.OrderStatusInProgress: {},
		models.OrderStatusCancelled:  {},
	},
	models.OrderStatusInProgress: {
		models.OrderStatusDelivered: {},
		models.OrderStatusCancelled: {},
		models.OrderStatusDisputed:  {},
	},
	models.OrderStatusDelivered: {
		models.OrderStatusCompleted: {},
		models.OrderStatusDisputed:  {},
	},
	models.OrderStatusCompleted: {},
	models.OrderStatusCancelled: {},
	models.OrderStatusDisputed: {
		models.OrderStatusCompleted: {},
		models.OrderStatusCancelled: {},
	},
}

// buyerOnly and sellerOnly gate who may request a target status.
// Cancellation is open to both sides of the order.
var buyerOnly = map[models.OrderStatus]struct{}{
	models.OrderStatusCompleted: {},
	models.OrderStatusDisputed:  {},
}

var sellerOnly = map[models.OrderStatus]struct{}{
	models.OrderStatusInProgress: {},
	models.OrderStatusDelivered:  {},
}

// Transition validates a requested status change. It checks the graph
// first, then the role gate, so an impossible transition reports as
// invalid rather than as a permission problem.
func Transition(current, requested models.OrderStatus, isBuyer bool) error {
	allowed, ok := transitions[current]
	if !ok {
		return apperrors.ErrInvalidTransition
	}
	if _, ok := allowed[requested]; !ok {
		return apperrors.ErrInvalidTransition
	}
	if _, ok := buyerOnly[requested]; ok && !isBuyer {
		return apperrors.ErrRoleNotPermitted
	}
	if _, ok := sellerOnly[requested]; ok && isBuyer {
		return apperrors.ErrRoleNotPermitted
	}
	return nil
}

// CanTransition reports whether any actor could move an order from
// current to requested, ignoring roles.
func CanTransition(current, requested models.OrderStatus) bool {
	allowed, ok := transitions[current]
	if !ok {
		return false
	}
	_, ok = allowed[requested]
	return ok
}

// IsTerminal reports whether no further transitions exist from status.
func IsTerminal(status models.OrderStatus) bool {
	allowed, ok := transitions[status]
	return ok && len(allowed) == 0
}

// AllowedTargets returns the statuses the given actor may request next.
func AllowedTargets(current models.OrderStatus, isBuyer bool) []models.OrderStatus {
	var targets []models.OrderStatus
	for _, s := range models.OrderStatuses {
		if Transition(current, s, isBuyer) == nil {
			targets = append(targets, s)
		}
	}
	return targets
}
