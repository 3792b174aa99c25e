package handler

import "errors"

var (
	// errNoHandlersAreCreated means the server config enables no transport.
	errNoHandlersAreCreated = errors.New("no handlers are created: set an HTTP or gRPC address")

	// errMissingService means a transport was enabled without a service it
	// routes to.
	errMissingService = errors.New("service is missing")
)
