package decode

import "fmt"

// Shape names the wire layout a payload is in. It is chosen by the caller, never sniffed.
type Shape int

const (
	// Simple is `{"data": {<id>: <asset fields>}}` with fields already in cache form.
	Simple Shape = iota
	// API is the remote source's own per-kind layout that needs remapping.
	API
)

func (s Shape) String() string {
	switch s {
	case Simple:
		return "simple"
	case API:
		return "api"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape accepts "simple" or "api".
func ParseShape(s string) (Shape, error) {
	switch s {
	case "simple":
		return Simple, nil
	case "api", "":
		return API, nil
	default:
		return 0, fmt.Errorf("unknown payload format %q (want api or simple)", s)
	}
}
