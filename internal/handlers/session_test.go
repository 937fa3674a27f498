package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hardcore/accounting/internal/apperrors"
	"github.com/hardcore/accounting/internal/jwt"
	"github.com/hardcore/accounting/internal/middlewares"
	"github.com/hardcore/accounting/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"username":"hardcore","password":"hardcore"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "hardcore", "hardcore").Return("token123", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"token":"token123"}`,
		},
		{
			name: "invalid credentials",
			body: `{"username":"hardcore","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "hardcore", "wrong").Return("", apperrors.NewInvalidCredentialsError())
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"code":"INVALID_CREDENTIALS","errorType":"Client","message":"The username or password is invalid","statusCode":401}`,
		},
		{
			name: "internal server error",
			body: `{"username":"hardcore","password":"hardcore"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "hardcore", "hardcore").Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"code":"INTERNAL_ERROR","errorType":"Unknown","message":"Internal server error","statusCode":500}`,
		},
		{
			name:         "missing username",
			body:         `{"password":"hardcore"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"code":"INVALID_PARAMETER","errorType":"Client","message":"The username is required","statusCode":400}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loginer := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(loginer)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1.0/session", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewLoginHandler(loginer)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestGetSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userInfo := models.UserInfo{ID: 5, Username: "hardcore", Password: "hash"}

	t.Run("authenticated", func(t *testing.T) {
		getter := NewMockUserInfoGetter(ctrl)
		converter := NewMockUserInfoConverter(ctrl)
		tokener := middlewares.NewMockTokener(ctrl)

		tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: 5}, nil)
		getter.EXPECT().GetUserInfoByUserID(gomock.Any(), int64(5)).Return(userInfo, nil)
		converter.EXPECT().Convert(userInfo).Return(models.UserView{ID: 5, Username: "hardcore", Password: "hash"})

		handler := middlewares.AuthMiddleware(tokener)(NewGetSessionHandler(getter, converter))

		req := httptest.NewRequest(http.MethodGet, "/v1.0/session", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `{"id":5,"username":"hardcore","password":"hash"}`, rr.Body.String())
	})

	t.Run("no user in context", func(t *testing.T) {
		handler := NewGetSessionHandler(NewMockUserInfoGetter(ctrl), NewMockUserInfoConverter(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/v1.0/session", nil).WithContext(context.Background())
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, `{"code":"UNAUTHORIZED","errorType":"Client","message":"Unauthorized","statusCode":401}`, rr.Body.String())
	})
}
