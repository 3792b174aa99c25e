package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, msgWelcome, http.StatusOK)
}

// dashboard greets the authenticated caller.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
		return
	}

	utils.WriteMessage(w, fmt.Sprintf("Welcome back, %s", identity.Email), http.StatusOK)
}
