package booking_test

import (
	"context"
	"corais/config"
	otelMocks "corais/infras/otel/mocks"
	"corais/internal/domains/booking/form"
	"corais/internal/domains/booking/model"
	"corais/internal/domains/booking/model/dto"
	bookingMocks "corais/internal/domains/booking/service/mocks"
	roomModel "corais/internal/domains/room/model"
	roomDto "corais/internal/domains/room/model/dto"
	roomMocks "corais/internal/domains/room/service/mocks"
	"corais/internal/handlers/booking"
	cacheMocks "corais/shared/cache/mocks"
	"corais/shared/failure"
	"corais/transport/http/middleware"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var catalog = []roomDto.CatalogRoom{
	{ID: "r1", Name: "Suíte Coral", PricePerNight: 450, MaxGuests: 2},
	{ID: "r2", Name: "Suíte Família", PricePerNight: 500, MaxGuests: 4},
}

const completeBody = `{
	"room_id": "r2",
	"check_in": "2025-03-10",
	"check_out": "2025-03-13",
	"guests_count": 2,
	"guest_name": "Maria Silva",
	"guest_email": "m@x.com",
	"guest_phone": "71999990000"
}`

func newRouter(t *testing.T) (http.Handler, *roomMocks.MockRoom, *bookingMocks.MockBooking) {
	ctrl := gomock.NewController(t)

	rooms := roomMocks.NewMockRoom(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)

	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl))
	handler := booking.New(rooms, bookings, mw, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, rooms, bookings
}

func data[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func TestHandler_GetForm_Preselect(t *testing.T) {
	router, rooms, _ := newRouter(t)

	rooms.EXPECT().ListAvailable(gomock.Any()).Return(catalog, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reservations/form?room=r2", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	state := data[dto.FormStateResponse](t, rec)
	assert.Equal(t, "r2", state.SelectedRoomID)
	assert.Equal(t, 2, state.GuestsCount)
	assert.Equal(t, 4, state.GuestsHint)
	assert.Len(t, state.Rooms, 2)
}

func TestHandler_GetForm_CatalogFailure(t *testing.T) {
	router, rooms, _ := newRouter(t)

	rooms.EXPECT().ListAvailable(gomock.Any()).
		Return(nil, failure.Wrap(http.StatusServiceUnavailable, fmt.Errorf("%w: timeout", roomModel.ErrCatalogFetch), "x"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reservations/form", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	state := data[dto.FormStateResponse](t, rec)
	assert.Empty(t, state.Rooms)
	assert.Equal(t, "Erro ao carregar quartos disponíveis", state.Notice)
}

func TestHandler_Quote(t *testing.T) {
	router, rooms, _ := newRouter(t)

	rooms.EXPECT().ListAvailable(gomock.Any()).Return(catalog, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/reservations/quote", strings.NewReader(completeBody)))

	require.Equal(t, http.StatusOK, rec.Code)

	quote := data[dto.QuoteResponse](t, rec)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 500.0, quote.PricePerNight)
	assert.Equal(t, 1500.0, quote.TotalAmount)
	assert.Equal(t, "Suíte Família", quote.RoomName)
}

func TestHandler_Quote_CatalogFailure(t *testing.T) {
	router, rooms, _ := newRouter(t)

	rooms.EXPECT().ListAvailable(gomock.Any()).
		Return(nil, fmt.Errorf("%w: timeout", roomModel.ErrCatalogFetch))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/reservations/quote", strings.NewReader(completeBody)))

	require.Equal(t, http.StatusOK, rec.Code)

	quote := data[dto.QuoteResponse](t, rec)
	assert.Empty(t, quote.RoomName)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 0.0, quote.TotalAmount)
	assert.Equal(t, "Erro ao carregar quartos disponíveis", quote.Notice)
}

func TestHandler_Submit(t *testing.T) {
	router, rooms, bookings := newRouter(t)

	rooms.EXPECT().ListAvailable(gomock.Any()).Return(catalog, nil)
	bookings.EXPECT().Submit(gomock.Any(), gomock.Any(), form.Catalog(catalog)).
		DoAndReturn(func(_ context.Context, d form.Draft, _ form.Catalog) (dto.Confirmation, error) {
			assert.Equal(t, "r2", d.RoomID)
			assert.Equal(t, 3, d.Nights())
			assert.Equal(t, "Maria Silva", d.GuestName)
			return dto.Confirmation{
				BookingID:       "b1",
				Message:         model.MessageSuccess,
				NotificationURL: "https://wa.me/5571991415729?text=x",
				TotalAmount:     1500,
				Nights:          3,
			}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(completeBody)))

	require.Equal(t, http.StatusCreated, rec.Code)

	confirmation := data[dto.Confirmation](t, rec)
	assert.Equal(t, model.MessageSuccess, confirmation.Message)
	assert.Equal(t, 1500.0, confirmation.TotalAmount)
}

func TestHandler_Submit_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(rooms *roomMocks.MockRoom, bookings *bookingMocks.MockBooking)
		wantCode  int
		wantBody  string
	}{
		{
			name:      "malformed body",
			body:      `{"room_id":`,
			setupMock: func(*roomMocks.MockRoom, *bookingMocks.MockBooking) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "bad date shape",
			body:      `{"check_in":"10/03/2025"}`,
			setupMock: func(*roomMocks.MockRoom, *bookingMocks.MockBooking) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "catalog unavailable leaves the room unselected",
			body: completeBody,
			setupMock: func(rooms *roomMocks.MockRoom, bookings *bookingMocks.MockBooking) {
				rooms.EXPECT().ListAvailable(gomock.Any()).
					Return(nil, fmt.Errorf("%w: timeout", roomModel.ErrCatalogFetch))
				bookings.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Len(0)).
					DoAndReturn(func(_ context.Context, d form.Draft, c form.Catalog) (dto.Confirmation, error) {
						return dto.Confirmation{}, form.Validate(d, c)
					})
			},
			wantCode: http.StatusBadRequest,
			wantBody: form.MessageMissingRequiredField,
		},
		{
			name: "persistence failure",
			body: completeBody,
			setupMock: func(rooms *roomMocks.MockRoom, bookings *bookingMocks.MockBooking) {
				rooms.EXPECT().ListAvailable(gomock.Any()).Return(catalog, nil)
				bookings.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dto.Confirmation{}, failure.Wrap(http.StatusInternalServerError, model.ErrPersistence, model.MessagePersistence))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: model.MessagePersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, rooms, bookings := newRouter(t)
			tt.setupMock(rooms, bookings)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
