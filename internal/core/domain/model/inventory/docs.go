// Package inventory tracks pharmacy stock lines and their shelf life.
package inventory
