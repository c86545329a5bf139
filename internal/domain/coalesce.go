package domain

// CoalesceStr returns the first non-empty string, or "" when all are empty.
// Used to apply defaults to optional fields from extraction output.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Float64FromPtrWithDefault dereferences the first non-nil pointer, falling
// back to the given default.
func Float64FromPtrWithDefault(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
