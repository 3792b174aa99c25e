// Package http implements the REST transport of go-fin-tracker.
//
// It wires chi routes to the service layer: public signup, login, version
// and health endpoints, and the entry routes behind the access-control
// gate. Request tracing, access logging, gzip and panic recovery are
// handled here before a request reaches a handler. Client responses carry
// a {"message": ...} body on every error; internal error text is only
// logged.
package http
