// Package notification models role-wide dashboard notifications.
package notification
