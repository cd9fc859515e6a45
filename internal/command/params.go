package command

import "strconv"

// Params arrive as generic JSON-decoded maps, so numeric values may be
// float64, int, or a numeric string depending on the transport.

// StringParam returns the string value for key, or fallback.
func StringParam(params map[string]any, key, fallback string) string {
	if s, ok := params[key].(string); ok {
		return s
	}
	return fallback
}

// IntParam returns the integer value for key, or fallback.
func IntParam(params map[string]any, key string, fallback int) int {
	if n, ok := intValue(params[key]); ok {
		return n
	}
	return fallback
}

// BoolParam returns the boolean value for key, or fallback.
func BoolParam(params map[string]any, key string, fallback bool) bool {
	switch v := params[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// FloatParam returns the float value for key, or fallback.
func FloatParam(params map[string]any, key string, fallback float64) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// requireInt returns the integer for key or an INVALID_REQUEST error when the
// parameter is missing or not numeric.
func requireInt(params map[string]any, key string) (int, *Error) {
	v, present := params[key]
	if !present {
		return 0, Errorf(CodeInvalidRequest, "%s is required", key)
	}
	n, ok := intValue(v)
	if !ok {
		return 0, Errorf(CodeInvalidRequest, "%s must be a number", key)
	}
	return n, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
