package decode

// Required decodes a member that must be present and valid.
func Required[T any](v Value, field string, conv Converter[T]) (T, error) {
	child := v.Get(field)
	if !child.Exists() {
		var zero T
		return zero, fail(child.path, ErrMissing)
	}
	return conv(child)
}

// Optional returns fallback for an absent or null member.
// A member that is present but invalid is still an error.
func Optional[T any](v Value, field string, conv Converter[T], fallback T) (T, error) {
	child := v.Get(field)
	if !child.Exists() {
		return fallback, nil
	}
	return conv(child)
}

// Lenient returns fallback for an absent, null or invalid member.
func Lenient[T any](v Value, field string, conv Converter[T], fallback T) T {
	child := v.Get(field)
	if !child.Exists() {
		return fallback
	}
	out, err := conv(child)
	if err != nil {
		return fallback
	}
	return out
}
