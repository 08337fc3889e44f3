package service_test

import (
	"context"
	"corais/config"
	otelMocks "corais/infras/otel/mocks"
	roomMocks "corais/internal/domains/room/mocks"
	"corais/internal/domains/room/model"
	"corais/internal/domains/room/model/dto"
	"corais/internal/domains/room/service"
	"corais/shared/cache"
	cacheMocks "corais/shared/cache/mocks"
	gDto "corais/shared/dto"
	"corais/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel()), mockRepo, mockCache
}

func cacheMiss() error {
	return fmt.Errorf("failed to get cache value: %w", cache.Nil)
}

func TestRoomService_ListAvailable(t *testing.T) {
	catalog := []model.Room{
		{ID: "r1", Name: "Suíte Coral", PricePerNight: 450, MaxGuests: 2},
		{ID: "r2", Name: "Suíte Família", PricePerNight: 500, MaxGuests: 4},
	}

	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom, c *cacheMocks.MockRedisCache)
		expected  []dto.CatalogRoom
		wantErr   bool
	}{
		{
			name: "queries available rooms ordered by price",
			setupMock: func(repo *roomMocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "room:available", gomock.Any()).Return(cacheMiss())
				repo.EXPECT().
					GetAll(gomock.Any(),
						gDto.QueryParams{SortBy: model.FieldPricePerNight, SortDir: gDto.SortDirAsc},
						gomock.Any(),
						model.FieldID, model.FieldName, model.FieldPricePerNight, model.FieldMaxGuests).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
						where, args := filter.GetWhereClause()
						assert.Equal(t, "(rooms.status = :status)", where)
						assert.Equal(t, "available", args["status"])

						return catalog, nil
					})
			},
			expected: []dto.CatalogRoom{
				{ID: "r1", Name: "Suíte Coral", PricePerNight: 450, MaxGuests: 2},
				{ID: "r2", Name: "Suíte Família", PricePerNight: 500, MaxGuests: 4},
			},
		},
		{
			name: "empty catalog",
			setupMock: func(repo *roomMocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss())
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{}, nil)
			},
			expected: []dto.CatalogRoom{},
		},
		{
			name: "cache hit skips repository",
			setupMock: func(_ *roomMocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "room:available", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*[]dto.CatalogRoom)) = []dto.CatalogRoom{{ID: "r9"}}

						return nil
					})
			},
			expected: []dto.CatalogRoom{{ID: "r9"}},
		},
		{
			name: "repository failure is a catalog fetch error",
			setupMock: func(repo *roomMocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, c := newService(t)
			tt.setupMock(repo, c)

			res, err := svc.ListAvailable(context.Background())

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrCatalogFetch)
				assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
				assert.EqualError(t, err, service.MessageCatalogFetch)
				assert.Nil(t, res)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestRoomService_ListAccommodations(t *testing.T) {
	svc, repo, c := newService(t)

	c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss())
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 2, SortBy: model.FieldPricePerNight, SortDir: gDto.SortDirAsc}, gomock.Any()).
		Return([]model.Room{
			{ID: "r1", Name: "Suíte Coral", Amenities: model.Amenities{"Wi-Fi"}},
			{ID: "r2", Name: "Suíte Família"},
		}, nil)

	res, err := svc.ListAccommodations(context.Background(), gDto.QueryParams{Page: 1, Limit: 2, SortBy: "password"})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, []string{"Wi-Fi"}, res.Rooms[0].Amenities)
}

func TestRoomService_ListAccommodationsFailure(t *testing.T) {
	svc, repo, c := newService(t)

	c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss())
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("timeout"))

	_, err := svc.ListAccommodations(context.Background(), gDto.QueryParams{})

	assert.ErrorIs(t, err, model.ErrCatalogFetch)
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name     string
		repoRoom model.Room
		repoErr  error
		wantCode int
		wantMsg  string
	}{
		{name: "found", repoRoom: model.Room{ID: "r1", Name: "Suíte Coral"}},
		{name: "not found", repoRoom: model.Room{}, wantCode: http.StatusNotFound, wantMsg: "room not found"},
		{name: "repository error", repoErr: errors.New("db down"), wantCode: http.StatusInternalServerError, wantMsg: service.MessageRoomFetch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, c := newService(t)

			c.EXPECT().Get(gomock.Any(), "room:get:r1", gomock.Any()).Return(cacheMiss())
			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.repoRoom, tt.repoErr)

			res, err := svc.Get(context.Background(), "r1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.EqualError(t, err, tt.wantMsg)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Suíte Coral", res.Name)
		})
	}
}
