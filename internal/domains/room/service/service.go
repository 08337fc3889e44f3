package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"corais/config"
	"corais/infras/otel"
	"corais/internal/domains/room/model"
	"corais/internal/domains/room/model/dto"
	"corais/internal/domains/room/repository"
	"corais/shared"
	"corais/shared/cache"
	"corais/shared/constant"
	gDto "corais/shared/dto"
	"corais/shared/failure"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom       = "room:get"
	cacheAvailableRoom = "room:available"
	cacheGetAllRoom    = "room:gets"

	MessageCatalogFetch = "Erro ao carregar quartos disponíveis"
	MessageRoomFetch    = "Erro ao carregar o quarto"
)

type Room interface {
	// ListAvailable returns bookable rooms ordered by ascending nightly price.
	ListAvailable(ctx context.Context) ([]dto.CatalogRoom, error)
	ListAccommodations(ctx context.Context, params gDto.QueryParams) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func availableFilter() gDto.FilterGroup {
	return shared.FilterByField(model.FieldStatus, constant.RoomStatusAvailable, model.TableName)
}

func (s *serviceImpl) ListAvailable(ctx context.Context) (res []dto.CatalogRoom, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheAvailableRoom, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheAvailableRoom).Msg("cache hit for available rooms")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldPricePerNight, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, availableFilter(), model.CatalogColumns...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return nil, failure.Wrap(http.StatusServiceUnavailable, fmt.Errorf("%w: %w", model.ErrCatalogFetch, err), MessageCatalogFetch)
	}

	res = dto.CatalogFromModels(models)

	s.saveCache(ctx, cacheAvailableRoom, res)

	return res, nil
}

func (s *serviceImpl) ListAccommodations(ctx context.Context, params gDto.QueryParams) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAccommodations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Restrict(model.FieldPricePerNight, model.FieldPricePerNight, model.FieldName, model.FieldMaxGuests)

	filter := availableFilter()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for accommodations")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, failure.Wrap(http.StatusServiceUnavailable, fmt.Errorf("%w: %w", model.ErrCatalogFetch, err), MessageCatalogFetch)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, failure.Wrap(http.StatusServiceUnavailable, fmt.Errorf("%w: %w", model.ErrCatalogFetch, err), MessageCatalogFetch)
	}

	res.FromModels(models, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room")

		return res, failure.InternalError(fmt.Errorf("failed to get room: %w", err), MessageRoomFetch)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save rooms to cache")
		}
	}()
}
