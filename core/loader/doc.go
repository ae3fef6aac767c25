// Package loader mounts HTTP features onto the fiber app.
//
// A feature is a self-contained slice of routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Features are registered once on a Manager; LoadAll then mounts every enabled
// one in registration order and stops at the first that fails to load.
package loader
