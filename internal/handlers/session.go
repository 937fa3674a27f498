package handlers

import (
	"context"
	"net/http"

	"github.com/hardcore/accounting/internal/apperrors"
	"github.com/hardcore/accounting/internal/middlewares"
	"github.com/hardcore/accounting/internal/models"
	"github.com/hardcore/accounting/internal/responses"
)

//go:generate mockgen -source=session.go -destination=session_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags session
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Router /v1.0/session [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return Handle(func(w http.ResponseWriter, r *http.Request) error {
		var req models.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			return err
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			return err
		}

		responses.JSON(w, http.StatusOK, models.LoginResponse{Token: token})
		return nil
	})
}

// NewGetSessionHandler returns the user owning the request's token.
// @Summary Current user
// @Description Returns the user the bearer token was issued to
// @Tags session
// @Produce json
// @Success 200 {object} models.UserView "Logged in user"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /v1.0/session [get]
// @Security BearerAuth
func NewGetSessionHandler(svc UserInfoGetter, converter UserInfoConverter) http.HandlerFunc {
	return Handle(func(w http.ResponseWriter, r *http.Request) error {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			return apperrors.NewUnauthorizedError()
		}

		userInfo, err := svc.GetUserInfoByUserID(r.Context(), userID)
		if err != nil {
			return err
		}

		responses.JSON(w, http.StatusOK, converter.Convert(userInfo))
		return nil
	})
}
