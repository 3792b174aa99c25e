// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

const msgNotFound = "Not found"

// notFound answers paths the router does not know.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, msgNotFound, http.StatusNotFound)
}

// methodNotFound replaces chi's 405 for a known path requested with an
// unregistered method. The response is the same 404 an unknown path gets, so
// a caller cannot probe which methods a route supports.
func methodNotFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not registered for path")

	notFound(w, r)
}
