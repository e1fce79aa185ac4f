// Package identity models who can use PharmacyGo: accounts, their profile
// (role, phone, organization) and the four roles that gate every dashboard.
//
// Key business rules:
//   - customers sign in with a phone number, every other role with an email
//   - the login identifier is unique case-insensitively (enforced by storage)
//   - the legacy "doctor" role code reads as Pharmacy
//   - passwords must have 8+ characters, not be all digits, not be common
package identity
