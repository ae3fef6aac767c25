// Package item is the item asset kind.
package item
