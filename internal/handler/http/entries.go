// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
		return
	}

	entries, err := h.services.EntryService.List(ctx, identity.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("error listing entries")
		utils.WriteMessage(w, msgListFailed, http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
		return
	}

	var payload models.EntryPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		log.Debug().Err(err).Msg("invalid entry body")
		utils.WriteMessage(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	entry, err := h.services.EntryService.Create(ctx, identity.UserID, payload)
	if err != nil {
		if statusFromError(err) == http.StatusBadRequest {
			log.Debug().Err(err).Msg("entry rejected by validation")
			utils.WriteMessage(w, validationMessage(err), http.StatusBadRequest)
			return
		}
		log.Err(err).Int64("user_id", identity.UserID).Msg("error saving entry")
		utils.WriteMessage(w, msgSaveFailed, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.EntryCreatedResponse{Message: msgEntrySaved, Entry: entry}, http.StatusCreated)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
		return
	}
	entryID := chi.URLParam(r, "id")

	var patch models.EntryPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		log.Debug().Err(err).Msg("invalid entry patch body")
		utils.WriteMessage(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	entry, err := h.services.EntryService.Update(ctx, identity.UserID, entryID, patch)
	if err != nil {
		switch status := statusFromError(err); status {
		case http.StatusBadRequest:
			log.Debug().Err(err).Msg("entry patch rejected by validation")
			utils.WriteMessage(w, validationMessage(err), status)
		case http.StatusNotFound:
			log.Debug().Str("entry_id", entryID).Msg("entry not found for update")
			utils.WriteMessage(w, msgEntryNotFound, status)
		default:
			log.Err(err).Str("entry_id", entryID).Msg("error updating entry")
			utils.WriteMessage(w, msgUpdateFailed, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
		return
	}
	entryID := chi.URLParam(r, "id")

	if err := h.services.EntryService.Delete(ctx, identity.UserID, entryID); err != nil {
		if statusFromError(err) == http.StatusNotFound {
			log.Debug().Str("entry_id", entryID).Msg("entry not found for delete")
			utils.WriteMessage(w, msgEntryNotOwned, http.StatusNotFound)
			return
		}
		log.Err(err).Str("entry_id", entryID).Msg("error deleting entry")
		utils.WriteMessage(w, msgDeleteFailed, http.StatusInternalServerError)
		return
	}

	utils.WriteMessage(w, msgEntryDeleted, http.StatusOK)
}
