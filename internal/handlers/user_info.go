package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hardcore/accounting/internal/apperrors"
	"github.com/hardcore/accounting/internal/models"
	"github.com/hardcore/accounting/internal/responses"
)

//go:generate mockgen -source=user_info.go -destination=user_info_mock.go -package=handlers

// UserInfoGetter looks users up by id.
type UserInfoGetter interface {
	GetUserInfoByUserID(ctx context.Context, userID int64) (models.UserInfo, error)
}

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (models.UserInfo, error)
}

// UserInfoConverter maps user records to the view returned to clients.
type UserInfoConverter interface {
	Convert(userInfo models.UserInfo) models.UserView
}

// NewGetUserInfoHandler returns an HTTP handler that fetches a user by id.
// @Summary Get user
// @Description Returns the user with the given id. Ids must be positive.
// @Tags users
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} models.UserView "User"
// @Failure 400 {object} models.ErrorResponse "Invalid user id"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /v1.0/users/{userId} [get]
func NewGetUserInfoHandler(svc UserInfoGetter, converter UserInfoConverter) http.HandlerFunc {
	return Handle(func(w http.ResponseWriter, r *http.Request) error {
		rawID := chi.URLParam(r, "userId")

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			return apperrors.NewInvalidParameterError("The user id %s is invalid", rawID)
		}

		userInfo, err := svc.GetUserInfoByUserID(r.Context(), userID)
		if err != nil {
			return err
		}

		responses.JSON(w, http.StatusOK, converter.Convert(userInfo))
		return nil
	})
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Usernames are unique. Password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body models.UserView true "Username and password"
// @Success 200 {object} models.UserView "Registered user with its assigned id"
// @Failure 400 {object} models.ErrorResponse "Invalid request or username taken"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /v1.0/users [post]
func NewRegisterHandler(svc Registerer, converter UserInfoConverter) http.HandlerFunc {
	return Handle(func(w http.ResponseWriter, r *http.Request) error {
		var req models.UserView
		if err := decodeJSON(r, &req); err != nil {
			return err
		}

		userInfo, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			return err
		}

		responses.JSON(w, http.StatusOK, converter.Convert(userInfo))
		return nil
	})
}
