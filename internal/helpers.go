package internal

import "strconv"

// ContextValue returns the value stored under key, or the zero value of T.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// Param returns the URL parameter converted to T.
// The second result is false when the parameter is missing or malformed.
func Param[T string | int | int64](c Context, name string) (T, bool) {
	return convertParam[T](c.Param(name))
}

func convertParam[T string | int | int64](raw string) (T, bool) {
	var zero T
	if raw == "" {
		return zero, false
	}
	switch any(zero).(type) {
	case string:
		return any(raw).(T), true
	case int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return zero, false
		}
		return any(v).(T), true
	case int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return zero, false
		}
		return any(v).(T), true
	}
	return zero, false
}
