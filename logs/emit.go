// Package logs wires structured logging into decoration.  Emit
// produces a combinator that observes selected method calls without
// touching the underlying metaobject.
package logs

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/metaobj-go/metaobj"
)

const durationFormat = "15:04:05.000000" // microseconds

// Emit returns a combinator logging each call's receiver, argument
// count, outcome and duration at the given verbosity.
func Emit(logger logr.Logger, verbosity int) metaobj.Combinator {
	return func(original metaobj.Handler) metaobj.Handler {
		return func(recv metaobj.Receiver, args ...any) (any, error) {
			log := logger.V(verbosity)
			if !log.Enabled() {
				return original(recv, args...)
			}
			log.Info("invoking",
				"receiver", fmt.Sprintf("%T", recv),
				"args", len(args))
			start := time.Now()
			result, err := original(recv, args...)
			elapsed := timespan(time.Since(start))
			if err != nil {
				log.Error(err, "failed", "duration", elapsed)
				return nil, err
			}
			log.Info("completed", "duration", elapsed)
			return result, nil
		}
	}
}

func timespan(d time.Duration) string {
	return time.Unix(0, 0).UTC().Add(d).Format(durationFormat)
}
