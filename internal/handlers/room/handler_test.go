package room_test

import (
	"corais/infras/otel/mocks"
	"corais/internal/domains/room/model/dto"
	"corais/internal/domains/room/service"
	serviceMocks "corais/internal/domains/room/service/mocks"
	"corais/internal/handlers/room"
	gDto "corais/shared/dto"
	"corais/shared/failure"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockRoom) {
	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockRoom(ctrl)

	handler := room.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, svc
}

func TestHandler_GetAvailableRooms(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().ListAvailable(gomock.Any()).Return([]dto.CatalogRoom{
		{ID: "r1", Name: "Suíte Coral", PricePerNight: 450, MaxGuests: 2},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/available", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []dto.CatalogRoom `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Suíte Coral", body.Data[0].Name)
}

func TestHandler_GetAvailableRooms_Unavailable(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().ListAvailable(gomock.Any()).
		Return(nil, failure.Wrap(http.StatusServiceUnavailable, errors.New("down"), service.MessageCatalogFetch))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/available", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), service.MessageCatalogFetch)
}

func TestHandler_GetAccommodations(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		ListAccommodations(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5, SortBy: "name"}).
		Return(dto.GetRoomsResponse{TotalData: 6, TotalPage: 2}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/accommodations?page=2&limit=5&sort_by=name", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_page":2`)
}

func TestHandler_GetRoomByID(t *testing.T) {
	router, svc := newRouter(t)

	const (
		coral   = "3f2b6c1e-8a4d-4c1b-9f2e-1a2b3c4d5e6f"
		missing = "9d7c1a2b-0e3f-4a5b-8c6d-7e8f9a0b1c2d"
	)

	svc.EXPECT().Get(gomock.Any(), coral).Return(dto.RoomResponse{ID: coral, Name: "Suíte Coral"}, nil)
	svc.EXPECT().Get(gomock.Any(), missing).Return(dto.RoomResponse{}, failure.NotFound("room"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/"+coral, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/"+missing, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_GetRoomByID_MalformedID(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "id must be a valid UUID")
}
