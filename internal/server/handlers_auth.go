package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Dali-debug/Jinen/internal/auth"
	"github.com/Dali-debug/Jinen/internal/metrics"
	"github.com/Dali-debug/Jinen/internal/records"
)

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var signupRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		UserType string `json:"userType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&signupRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if signupRequest.Email == "" || signupRequest.Password == "" ||
		signupRequest.Name == "" || signupRequest.UserType == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if signupRequest.UserType != records.UserTypeParent && signupRequest.UserType != records.UserTypeNursery {
		respondError(w, http.StatusBadRequest, "Invalid user type")
		return
	}

	user, err := s.identity.SignUp(r.Context(),
		signupRequest.Email, signupRequest.Password, signupRequest.Name, signupRequest.UserType)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			respondError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		s.logger.Error("Sign up failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("signup").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	metrics.SignupsTotal.Inc()
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var signinRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&signinRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if signinRequest.Email == "" || signinRequest.Password == "" {
		respondError(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	token, user, err := s.identity.SignIn(r.Context(), signinRequest.Email, signinRequest.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		s.logger.Error("Sign in failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("signin").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"accessToken": token,
		"user":        user,
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	profile, err := s.store.Profile(r.Context(), user.ID)
	if err != nil {
		s.respondStoreError(w, "get_profile", "Profile not found", "Failed to fetch profile", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}
