// Package decode turns remote JSON payloads into asset records with field-path errors.
//
// Payloads come in one of two Shapes, chosen by the caller: Simple, where each entry
// already uses the cache's field names, and API, the remote source's own layout that
// needs remapping per asset kind. This package does not know any asset kind; it offers
// the primitives kind decoders are written with.
//
// # Field access
//
// Values are backed by gjson and carry their dotted path ("data.Ahri.image.full"), so a
// failure points at the offending field. Three accessors share one converter set
// (String, Int, Float, Bool, Strings, IntString):
//
//   - Required: absent or null is ErrMissing, wrong type is ErrType.
//   - Optional: absent or null yields the fallback, wrong type is still ErrType.
//   - Lenient: absent, null or wrong type all yield the fallback.
//
// Each and Elements iterate objects and arrays and stop at the first error, which keeps
// batch decoding all-or-nothing.
//
// # Usage
//
//	root, err := decode.Parse(payload)
//	data, err := root.Object("data")
//	err = data.Each(func(id string, entry decode.Value) error {
//	    name, err := decode.Required(entry, "name", decode.String)
//	    ...
//	})
package decode
