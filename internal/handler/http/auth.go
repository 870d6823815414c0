package http

import (
	"net/http"

	"github.com/MKhiriev/go-lockr/internal/app"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/utils"
	"github.com/MKhiriev/go-lockr/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	h.issueToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeServiceError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")
	h.issueToken(w, r, foundUser, http.StatusOK)
}

func (h *Handler) sendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.OTPRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.OTPService.SendOTP(ctx, req); err != nil {
		writeServiceError(w, r, err, "sending code failed")
		return
	}

	if _, err := utils.WriteJSON(w, messageResponse{Message: app.MsgOTPSent}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write send-otp response")
	}
}

// verifyOTP consumes the code and logs the account in, exactly like a
// password login.
func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.OTPVerification
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.OTPService.VerifyOTP(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "code verification failed")
		return
	}

	log.Debug().Int64("user_id", user.UserID).Str("purpose", string(req.Type)).Msg("code verified")
	h.issueToken(w, r, user, http.StatusOK)
}

type messageResponse struct {
	Message string `json:"message"`
}

// issueToken answers with the user as JSON and a fresh bearer token in the
// Authorization header.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	user.Password = ""
	user.PasswordHash = ""

	w.Header().Set("Authorization", token.Bearer())
	if _, err = utils.WriteJSON(w, user, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write auth response")
	}
}
