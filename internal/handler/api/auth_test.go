//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"meeting-room-api/internal/handler/api"
	resdto "meeting-room-api/internal/handler/dto/response"
	"meeting-room-api/internal/pkg/errs"
	"meeting-room-api/internal/usecase/commands"
	"meeting-room-api/internal/usecase/queries"
	"meeting-room-api/tests/common/builder"
	"meeting-room-api/tests/common/httptest"
	"meeting-room-api/tests/common/testutil"
	commandsmock "meeting-room-api/tests/mock/commands"
	queriesmock "meeting-room-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	currentUser  uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.currentUser = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.currentUser)
		c.Set("user_email", "test@example.com")
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/profile", authMiddleware, s.handler.Profile)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewUserBuilder().BuildLoginRequestDTO()

	s.Run("success: returns access token", func() {
		result := &commands.LoginResult{UserID: s.currentUser, AccessToken: "signed.jwt.token"}
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("signed.jwt.token", body.AccessToken)
	})

	s.Run("error: 401 on invalid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on malformed request", func() {
		cases := []func(map[string]any){
			testutil.Field("email", nil),
			testutil.Field("password", nil),
			testutil.Field("email", "not-an-email"),
			testutil.Field("password", "short"),
		}
		for _, mutate := range cases {
			requestMap := testutil.DtoMap(s.T(), reqBody, mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
			s.Equal(http.StatusBadRequest, rec.Code)
		}
	})
}

func (s *AuthHandlerTestSuite) TestProfile() {
	url := "/auth/profile"

	s.Run("success: returns stored profile", func() {
		view := &queries.PublicUserView{ID: s.currentUser, Name: "Test User", Email: "test@example.com"}
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.currentUser).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.currentUser, body.UserID)
		s.Equal("Test User", body.Name)
		s.Equal("test@example.com", body.Email)
	})

	s.Run("error: 401 when the account no longer exists", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.currentUser).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrUserNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
