// Package server runs the transports created by package handler.
//
// NewServer binds every configured listener up front, so a bad address fails
// at startup rather than after the process reports it is running. Run then
// serves until its context ends or a transport fails, and drains all
// transports in parallel within shutdownTimeout.
package server
