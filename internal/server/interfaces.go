package server

import "context"

// Server drives the enabled transports.
type Server interface {
	// Run serves until ctx is done or a transport stops on its own, then
	// shuts every transport down. It returns the first serve error, if any.
	Run(ctx context.Context) error
}

// transport is a single bound listener.
type transport interface {
	name() string
	addr() string
	// serve blocks until the transport stops. A graceful stop returns nil.
	serve() error
	shutdown(ctx context.Context) error
	// close releases a listener that never served.
	close() error
}
