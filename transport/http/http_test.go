package http_test

import (
	"context"
	"corais/config"
	kafkaMocks "corais/infras/kafka/mocks"
	otelMocks "corais/infras/otel/mocks"
	bookingMocks "corais/internal/domains/booking/service/mocks"
	roomMocks "corais/internal/domains/room/service/mocks"
	"corais/internal/handlers/booking"
	"corais/internal/handlers/room"
	"corais/internal/handlers/site"
	cacheMocks "corais/shared/cache/mocks"
	transport "corais/transport/http"
	"corais/transport/http/middleware"
	"corais/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*transport.HTTP, *roomMocks.MockRoom) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://villadoscorais.com.br"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	rooms := roomMocks.NewMockRoom(ctrl)
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))

	bookings := bookingMocks.NewMockBooking(ctrl)

	r := router.New(router.DomainHandlers{
		Room:    room.New(rooms, otelMocks.NewOtel()),
		Booking: booking.New(rooms, bookings, mw, otelMocks.NewOtel()),
		Site:    site.New(cfg, otelMocks.NewOtel()),
	})

	return transport.New(cfg, r, mw, nil, nil, nil, bookings, otelMocks.NewOtel()), rooms
}

func TestHTTP_Health(t *testing.T) {
	server, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHTTP_RoutesAndCORS(t *testing.T) {
	server, rooms := newServer(t)

	rooms.EXPECT().ListAvailable(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms/available", nil)
	req.Header.Set("Origin", "https://villadoscorais.com.br")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://villadoscorais.com.br", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_CleanupDrainsBeforeClosingKafka(t *testing.T) {
	ctrl := gomock.NewController(t)

	bookings := bookingMocks.NewMockBooking(ctrl)
	producer := kafkaMocks.NewMockClient(ctrl)

	gomock.InOrder(
		bookings.EXPECT().Drain(gomock.Any()).Return(nil),
		producer.EXPECT().Close().Return(nil),
	)

	server := transport.New(&config.Config{}, router.Router{}, nil, nil, nil, producer, bookings, otelMocks.NewOtel())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	server.Cleanup(ctx)
}

func TestHTTP_CleanupClosesKafkaWhenDrainTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)

	bookings := bookingMocks.NewMockBooking(ctrl)
	producer := kafkaMocks.NewMockClient(ctrl)

	bookings.EXPECT().Drain(gomock.Any()).Return(context.DeadlineExceeded)
	producer.EXPECT().Close().Return(nil)

	server := transport.New(&config.Config{}, router.Router{}, nil, nil, nil, producer, bookings, otelMocks.NewOtel())

	server.Cleanup(context.Background())
}
