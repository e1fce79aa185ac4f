// Package kernel holds the value objects shared by every PharmacyGo
// aggregate:
//   - UUID: identifier of accounts, pharmacies, orders, tasks and the rest
//   - MapPin / Percent: where a pharmacy sits on the customer dashboard map
//
// Values are immutable and reject their zero value through Validate.
package kernel
