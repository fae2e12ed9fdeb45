package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer selects the shared trace channel used across this module, the way
// every gorgo sub-package calls tracing.Select with its own dotted key.
func tracer() tracing.Trace {
	return tracing.Select("gogll")
}
