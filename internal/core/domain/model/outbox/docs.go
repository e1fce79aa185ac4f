// Package outbox holds domain events persisted alongside the aggregates that
// raised them, until a background job hands them to the message bus.
package outbox
