// Package runes is the rune path asset kind ("runesReforged").
//
// A path is the cached unit: searching for a rune name finds the path that
// holds it, and Path.Find reaches the rune itself.
package runes
