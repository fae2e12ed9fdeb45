package gll

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("gogll")
}
