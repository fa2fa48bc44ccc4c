package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/cliff-de-tech/library-service/internal/errs"
	"github.com/cliff-de-tech/library-service/internal/model"

	service_mocks "github.com/cliff-de-tech/library-service/internal/handler/mocks"
)

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
		bodyContains string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	var tests = []struct {
		name         string
		requestBody  string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:        "ok",
			requestBody: `{"username":"paul","email":"paul@arrakis.io","password":"spiceflow","dateOfBirth":"1990-01-02"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Register(gomock.Any(), model.UserCreateRequest{
						Username:    "paul",
						Email:       "paul@arrakis.io",
						Password:    "spiceflow",
						DateOfBirth: "1990-01-02",
					}).
					Return(model.User{
						Username: "paul",
						Email:    "paul@arrakis.io",
						Role:     "MEMBER",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"username":"paul","email":"paul@arrakis.io","role":"MEMBER"}`,
			},
		},
		{
			name:        "err. duplicate username",
			requestBody: `{"username":"paul","email":"paul@arrakis.io","password":"spiceflow"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Register(gomock.Any(), model.UserCreateRequest{
						Username: "paul",
						Email:    "paul@arrakis.io",
						Password: "spiceflow",
					}).
					Return(model.User{}, errs.ErrConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"already exists"}`,
			},
		},
		{
			name:         "err. short password",
			requestBody:  `{"username":"paul","email":"paul@arrakis.io","password":"short"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "Password",
			},
		},
		{
			name:         "err. bad role",
			requestBody:  `{"username":"paul","email":"paul@arrakis.io","password":"spiceflow","role":"EMPEROR"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "Role",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			e, _, authSvc := newTestRouter(t, c)
			tt.mockBehavior(authSvc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(tt.requestBody))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.bodyContains != "" {
				require.Contains(t, w.Body.String(), tt.response.bodyContains)
			} else {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	var tests = []struct {
		name         string
		requestBody  string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:        "ok",
			requestBody: `{"username":"paul","password":"spiceflow"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(gomock.Any(), model.AuthRequest{Username: "paul", Password: "spiceflow"}).
					Return(model.AuthResponse{ExpiresIn: 1700000000, AccessToken: "token"}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"expiresIn":1700000000,"accessToken":"token"}`,
			},
		},
		{
			name:        "err. invalid credentials",
			requestBody: `{"username":"paul","password":"wrong-password"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(gomock.Any(), model.AuthRequest{Username: "paul", Password: "wrong-password"}).
					Return(model.AuthResponse{}, errs.ErrInvalidCredentials)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"Invalid credentials"}`,
			},
		},
		{
			name:         "err. missing password",
			requestBody:  `{"username":"paul"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'AuthRequest.Password' Error:Field validation for 'Password' failed on the 'required' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			e, _, authSvc := newTestRouter(t, c)
			tt.mockBehavior(authSvc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(tt.requestBody))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Contact(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
		bodyContains string
	}

	var tests = []struct {
		name        string
		requestBody string
		response    response
	}{
		{
			name:        "ok",
			requestBody: `{"name":"John Smith","email":"john@example.com","message":"hello"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"name":"John Smith","email":"john@example.com","message":"hello"}`,
			},
		},
		{
			name:        "err. digits in name",
			requestBody: `{"name":"John2","email":"john@example.com","message":"hello"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "Name",
			},
		},
		{
			name:        "err. spaces only name",
			requestBody: `{"name":"   ","email":"john@example.com","message":"hello"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "Name",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			e, _, _ := newTestRouter(t, c)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(tt.requestBody))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.bodyContains != "" {
				require.Contains(t, w.Body.String(), tt.response.bodyContains)
			} else {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
