package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vmfit/internal/handler/http/requestid"
	"vmfit/internal/handler/http/respond"
)

// tokenTTL is the lifetime of an issued admin token.
const tokenTTL = 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// IssueToken creates a signed admin JWT for the given subject.
func IssueToken(secret []byte, subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// TokenHandler authenticates admin credentials and issues a JWT.
func TokenHandler(secret []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed", slog.String("reason", "invalid_request"))
			respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
			return
		}

		if err := ValidateCredentials(Credentials{Email: req.Email, Password: req.Password}); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.String("email", req.Email))
			respond.SafeError(w, http.StatusUnauthorized, ErrInvalidCredentials)
			return
		}

		signed, err := IssueToken(secret, req.Email)
		if err != nil {
			logger.Error("token generation failed", slog.Any("error", err))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		logger.Info("authentication succeeded", slog.String("email", req.Email))
		respond.JSON(w, http.StatusOK, tokenResponse{Token: signed})
	}
}
