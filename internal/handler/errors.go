package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the configuration
// enables neither HTTP nor gRPC.
var errNoHandlersAreCreated = errors.New("no handlers are created")
