package api

import (
	"fmt"
	"net/http"

	"github.com/ZenKakzi/scholar-book-flow/internal/cookies"
	"github.com/ZenKakzi/scholar-book-flow/internal/models"
	"github.com/ZenKakzi/scholar-book-flow/internal/session"
)

// HandleLogin validates credentials against the roster and hands back the
// identity plus the role-specific landing path the client should route to.
func (a *Api) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var params models.HandleLoginParams

	if err := decodeJson(r, &params); err != nil {
		a.logger.Warn(fmt.Sprintf("error decoding json: %v", err), "service", "HandleLogin")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("error decoding json: %v", err))
		return
	}

	if err := validate.Struct(&params); err != nil {
		a.logger.Warn(fmt.Sprintf("validation error: %v", err), "service", "HandleLogin")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("validation error: %v", err))
		return
	}

	user, err := a.sessions.Login(r.Context(), params.Email, params.Password)

	if err != nil {
		if err == session.ErrInvalidCredentials {
			a.logger.Warn("login rejected", "service", "HandleLogin", "email", params.Email)
			respondWithError(w, http.StatusUnauthorized, err)
			return
		}

		a.logger.Error(err.Error(), "service", "HandleLogin")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	if err := cookies.CreateAccessToken(w, user.Id, a.config.Jwt_secret); err != nil {
		a.logger.Error(err.Error(), "service", "HandleLogin")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, &models.HandleLoginResponse{
		User:     user,
		Redirect: session.LandingPath(user.Role),
	})
}

// HandleLogout clears the identity and wipes all persisted state, the
// catalogue included. The next start reseeds from built-in defaults.
func (a *Api) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Logout(r.Context()); err != nil {
		a.logger.Error(err.Error(), "service", "HandleLogout")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	cookies.ClearAccessToken(w)

	w.WriteHeader(http.StatusNoContent)
}
