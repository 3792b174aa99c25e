package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/crypto"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := decodeJSON(w, r, &request); err != nil {
		log.Err(err).Msg("invalid signup body")
		utils.WriteMessage(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		switch status := statusFromError(err); status {
		case http.StatusBadRequest:
			log.Debug().Err(err).Msg("invalid signup data")
			message := msgAllFieldsNeeded
			if isPasswordTooLong(err) {
				message = msgPasswordTooLong
			}
			utils.WriteMessage(w, message, status)
		case http.StatusConflict:
			log.Debug().Err(err).Msg("email or username already exists")
			utils.WriteMessage(w, msgIdentityTaken, status)
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			utils.WriteMessage(w, msgServerError, http.StatusInternalServerError)
		}
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user signed up")
	utils.WriteJSON(w, models.SignupResponse{Message: msgSignupOK, User: registeredUser}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		log.Err(err).Msg("invalid login body")
		utils.WriteMessage(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch status := statusFromError(err); status {
		case http.StatusBadRequest:
			log.Debug().Err(err).Msg("invalid login data")
			utils.WriteMessage(w, msgCredentialsNeed, status)
		case http.StatusUnauthorized:
			log.Info().Err(err).Msg("no user was found/wrong password")
			utils.WriteMessage(w, msgBadCredentials, status)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteMessage(w, msgServerError, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, msgServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{
		Message: msgLoginOK,
		Token:   token.SignedString,
		User: models.LoginUser{
			Name:  foundUser.FirstName,
			Email: foundUser.Email,
		},
	}, http.StatusOK)
}

func isPasswordTooLong(err error) bool {
	return errors.Is(err, crypto.ErrPasswordTooLong)
}

// decodeJSON reads a bounded JSON body into dst. Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidBody
	}
	return nil
}
