package http

import (
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

// version answers with the bare build version, e.g. "1.4.0".
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	utils.WriteText(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
