//go:build unit

package api_test

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"wanderbook/internal/domain/user"
	"wanderbook/internal/handler/dto"
	"wanderbook/internal/usecase"
	"wanderbook/internal/usecase/queries"
	"wanderbook/internal/usecase/shared"
	commonhttp "wanderbook/tests/common/httptest"
)

func (s *HandlerSuite) TestLogin() {
	s.Run("sets session cookies and returns the user", func() {
		userID := uuid.New()
		s.authSvc.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(
				&usecase.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
				&usecase.AuthenticatedUser{ID: userID, Email: "amaya@example.com", Role: user.RoleTraveler},
				nil,
			)

		body := dto.LoginRequest{Email: "amaya@example.com", Password: "s3cret-pass"}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", body, "")

		var resp dto.UserResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(userID, resp.ID)
		s.Equal("traveler", resp.Role)

		cookies := w.Result().Cookies()
		names := map[string]bool{}
		for _, c := range cookies {
			names[c.Name] = true
		}
		s.True(names["access_token"])
		s.True(names["refresh_token"])
	})

	s.Run("wrong credentials are a 401", func() {
		s.authSvc.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, nil, shared.ErrInvalidCredentials)

		body := dto.LoginRequest{Email: "amaya@example.com", Password: "wrong-pass-1"}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", body, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("malformed email fails like wrong credentials", func() {
		body := dto.LoginRequest{Email: "not-an-email", Password: "s3cret-pass"}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", body, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *HandlerSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		userID := uuid.New()
		s.userQry.EXPECT().
			Get(gomock.Any(), userID).
			Return(&queries.UserView{ID: userID, Email: "amaya@example.com", Role: "traveler"}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil,
			s.tokenFor(userID, user.RoleTraveler))

		var resp dto.UserResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(userID, resp.ID)
	})

	s.Run("requires authentication", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentication required")
	})
}

func (s *HandlerSuite) TestRefresh() {
	s.Run("rotates tokens from the refresh cookie", func() {
		s.authSvc.EXPECT().
			Refresh(gomock.Any(), "old-refresh").
			Return(&usecase.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		cookies := []*http.Cookie{{Name: "refresh_token", Value: "old-refresh"}}
		w := commonhttp.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/auth/refresh", nil, cookies, "")

		s.Equal(http.StatusNoContent, w.Code)
		access := commonhttp.ExtractCookie(w, "access_token")
		s.Require().NotNil(access)
		s.Equal("new-access", access.Value)
	})

	s.Run("missing cookie is a 401", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/refresh", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("rejected token is a 401", func() {
		s.authSvc.EXPECT().
			Refresh(gomock.Any(), "stale").
			Return(nil, shared.ErrInvalidCredentials)

		cookies := []*http.Cookie{{Name: "refresh_token", Value: "stale"}}
		w := commonhttp.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/auth/refresh", nil, cookies, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *HandlerSuite) TestLogout() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, w.Code)
}
