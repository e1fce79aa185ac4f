// Package payment models the payment providers shown to customers and the
// cards they saved. No money moves through this package.
package payment
