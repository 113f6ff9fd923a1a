// Package order contains the Order aggregate, its Line value object and the
// Status and DeliveryMode enums. Orders are created atomically at checkout
// with a snapshot total and move through the
// pending -> en_route -> delivered state machine driven by courier actions.
package order
