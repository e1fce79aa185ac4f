// Package delivery holds the distributor side of the domain: delivery tasks,
// the route timeline and the status board.
package delivery
