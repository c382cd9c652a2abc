package codegen

import "errors"

// ErrDerivesAlreadyIngested is the configuration error returned when additional
// derives are ingested a second time on the same context.
var ErrDerivesAlreadyIngested = errors.New("derives may only be ingested once")
