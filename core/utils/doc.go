// Package utils provides small helpers shared by the asset kinds and commands
// that don't fit into a domain-specific package.
package utils
