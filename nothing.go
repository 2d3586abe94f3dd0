package metaobj

type nothing struct{}

// Nothing is the reserved marker a handler returns to signal it produced
// no result.  Combinators inspect it to decide precedence and the dispatch
// layer coerces it to nil before results reach callers, so it can never be
// mistaken for a legitimate value downstream.
var Nothing any = nothing{}

// settle replaces the reserved marker with an ordinary nil result.
func settle(result any) any {
	if result == Nothing {
		return nil
	}
	return result
}
