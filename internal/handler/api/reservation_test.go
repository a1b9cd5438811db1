//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"meeting-room-api/internal/handler/api"
	reqdto "meeting-room-api/internal/handler/dto/request"
	resdto "meeting-room-api/internal/handler/dto/response"
	"meeting-room-api/internal/pkg/errs"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	currentUser  uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.currentUser = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.currentUser)
		c.Set("user_email", "test@example.com")
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations", authMiddleware, s.handler.List)
	s.router.GET("/reservations/mine", authMiddleware, s.handler.ListMine)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/reservations/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/reservations/:id", authMiddleware, s.handler.Remove)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.currentUser).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.RoomID, body.RoomID)
		s.Equal(returnView.User.ID, body.User.ID)
	})

	s.Run("success: accepts a date-only string in the body", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", "2030-06-15"))

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.currentUser).
			DoAndReturn(func(_ context.Context, req reqdto.CreateReservationRequest, _ uuid.UUID) (*queries.ReservationView, error) {
				s.Equal("2030-06-15", req.Date.Format("2006-01-02"))
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 on a malformed date string", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", "15.06.2030"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		missing := []string{"roomId", "date", "startTime", "endTime"}
		for _, field := range missing {
			s.Run("missing field: "+field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: domain errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "past start time", err: errs.ErrPastStartTime, expectCode: http.StatusBadRequest},
			{name: "duration too short", err: errs.ErrDurationTooShort, expectCode: http.StatusBadRequest},
			{name: "room conflict", err: errs.ErrRoomConflict, expectCode: http.StatusConflict},
			{name: "database failure", err: errs.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.currentUser).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().BuildView(),
		builder.NewReservationBuilder().WithRoomID("room-b").BuildView(),
	}

	s.Run("success: returns all reservations", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: filters are forwarded", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters queries.ReservationFilters) ([]*queries.ReservationView, error) {
				s.Require().NotNil(filters.RoomID)
				s.Equal("room-a", *filters.RoomID)
				s.Require().NotNil(filters.UserName)
				s.Equal("Test", *filters.UserName)
				s.Require().NotNil(filters.Date)
				s.Equal("2030-06-15", filters.Date.Format("2006-01-02"))
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations?roomId=room-a&userName=Test&date=2030-06-15", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed date filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations?date=15-06-2030", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter parameters")
	})

	s.Run("error: 400 on malformed userId filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations?userId=not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter parameters")
	})
}

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.Run("success: returns own reservations only", func() {
		view := builder.NewReservationBuilder().WithUserID(s.currentUser).BuildView()

		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.currentUser).
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/mine", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(s.currentUser, body[0].User.ID)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	b := builder.NewReservationBuilder()
	view := b.BuildView()

	s.Run("success: returns reservation by id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 404 when not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	b := builder.NewReservationBuilder()
	view := b.BuildView()
	reqBody := map[string]any{"roomId": "room-c"}

	s.Run("success: returns 200 with updated view", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), s.currentUser).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/"+view.ID.String(), reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 403 when not the owner", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), s.currentUser).
			Return(nil, errs.ErrNotReservationOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/"+view.ID.String(), reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "your own reservations")
	})

	s.Run("error: 404 when not found", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), s.currentUser).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/"+view.ID.String(), reqBody, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 409 when new slot conflicts", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), s.currentUser).
			Return(nil, errs.ErrRoomConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/"+view.ID.String(), reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

// ================================================================================
// TestRemove
// ================================================================================

func (s *ReservationHandlerTestSuite) TestRemove() {
	id := uuid.New()

	s.Run("success: returns confirmation message", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), id, s.currentUser).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "bearer-token")

		var body resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Reservation cancelled successfully.", body.Message)
	})

	s.Run("error: 403 when not the owner", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), id, s.currentUser).
			Return(errs.ErrNotReservationOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 404 when not found", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), id, s.currentUser).
			Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
