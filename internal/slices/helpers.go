package slices

// Contains checks for the existence of v in s.
func Contains[E comparable](s []E, v E) bool {
	for _, s := range s {
		if v == s {
			return true
		}
	}
	return false
}

// Map turns a []IN to a []OUT using a mapping function.
func Map[IN, OUT any](in []IN, fun func(IN) OUT) []OUT {
	if in == nil {
		return nil
	}
	out := make([]OUT, len(in))
	for i, item := range in {
		out[i] = fun(item)
	}
	return out
}

// Filter returns a new slice with only the elements of s
// for which fun returned true.
func Filter[IN any](in []IN, fun func(IN) bool) []IN {
	var out []IN
	for _, item := range in {
		if fun(item) {
			out = append(out, item)
		}
	}
	return out
}
