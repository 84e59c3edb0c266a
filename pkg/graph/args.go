package graph

// Helpers for reading JSON-decoded invocation arguments. JSON numbers decode
// as float64; these accessors normalize the common cases.

// ArgString returns the string argument for key, or def when absent.
func ArgString(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return def
}

// ArgInt returns the integer argument for key, or def when absent.
func ArgInt(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// ArgBool returns the boolean argument for key, or def when absent.
func ArgBool(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}
