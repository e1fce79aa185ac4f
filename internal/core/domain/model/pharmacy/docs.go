// Package pharmacy models pharmacy stores and their onboarding applications.
//
// An application starts Pending (or is moved to Review) and is decided once,
// by an admin, into Approved or Rejected; the decision raises an
// ApplicationReviewed event.
package pharmacy
