package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"corais/config"
	"corais/infras/kafka"
	"corais/infras/otel"
	"corais/internal/domains/booking/form"
	"corais/internal/domains/booking/model"
	"corais/internal/domains/booking/model/dto"
	"corais/internal/domains/booking/notify"
	"corais/internal/domains/booking/repository"
	"corais/shared"
	"corais/shared/cache"
	"corais/shared/constant"
	"corais/shared/failure"
	"corais/shared/timezone"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	cacheSubmitLock = "booking:submit"

	publishTimeout = 10 * time.Second
)

type Booking interface {
	// Submit validates draft against catalog, stores exactly one booking and
	// returns the confirmation with the owner notification link.
	Submit(ctx context.Context, draft form.Draft, catalog form.Catalog) (dto.Confirmation, error)
	// Drain waits for pending booking events to be published, bounded by ctx.
	Drain(ctx context.Context) error
}

type serviceImpl struct {
	repo      repository.Booking
	cfg       *config.Config
	cache     cache.RedisCache
	publisher notify.Publisher
	otel      otel.Otel
	group     singleflight.Group
	pending   sync.WaitGroup
}

func New(
	repo repository.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	publisher notify.Publisher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
	}
}

// fingerprint identifies a submission so duplicates of the same draft collapse
// into one write.
func fingerprint(d form.Draft) string {
	parts := []string{
		d.RoomID,
		timezone.Format(*d.CheckIn, constant.DateOnlyFormat),
		timezone.Format(*d.CheckOut, constant.DateOnlyFormat),
		strconv.Itoa(d.GuestsCount),
		strings.ToLower(strings.TrimSpace(d.GuestEmail)),
		strings.TrimSpace(d.GuestName),
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))

	return hex.EncodeToString(sum[:])
}

func (s *serviceImpl) Submit(ctx context.Context, draft form.Draft, catalog form.Catalog) (res dto.Confirmation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = form.Validate(draft, catalog); err != nil {
		return res, err
	}

	key := fingerprint(draft)
	work := context.WithoutCancel(ctx)

	ch := s.group.DoChan(key, func() (any, error) {
		return s.submit(work, key, draft, catalog)
	})

	select {
	case <-ctx.Done():
		log.Warn().Str("fingerprint", key).Msg("booking submission abandoned by caller")

		return res, fmt.Errorf("booking submission abandoned: %w", ctx.Err())
	case r := <-ch:
		if r.Err != nil {
			return res, r.Err
		}

		if r.Shared {
			log.Debug().Str("fingerprint", key).Msg("duplicate booking submission joined in-flight request")
		}

		return r.Val.(dto.Confirmation), nil
	}
}

func (s *serviceImpl) submit(ctx context.Context, key string, draft form.Draft, catalog form.Catalog) (dto.Confirmation, error) {
	lockKey := shared.BuildCacheKey(cacheSubmitLock, key)

	acquired, err := s.cache.Lock(ctx, lockKey, s.cfg.App.Booking.SubmitLockSeconds)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("cacheKey", lockKey).Msg("submit lock unavailable, continuing without it")
	case !acquired:
		return dto.Confirmation{}, failure.Conflict(model.ErrSubmissionInFlight, model.MessageSubmissionFlight)
	default:
		defer s.releaseLock(ctx, lockKey)
	}

	room := catalog.Find(draft.RoomID)
	nights := draft.Nights()
	total := form.ComputeTotal(nights, room)
	record := dto.NewRecord(draft, total)

	if err := s.repo.Insert(ctx, record); err != nil {
		log.Error().Err(err).Str("roomID", record.RoomID).Msg("failed to insert booking")

		return dto.Confirmation{}, failure.InternalError(fmt.Errorf("%w: %w", model.ErrPersistence, err), model.MessagePersistence)
	}

	summary := notify.Summary{
		GuestName:   record.GuestName,
		RoomName:    room.Name,
		CheckIn:     *draft.CheckIn,
		CheckOut:    *draft.CheckOut,
		GuestsCount: record.GuestsCount,
		TotalAmount: total,
		GuestPhone:  record.GuestPhone,
		GuestEmail:  record.GuestEmail,
	}

	link := notify.WhatsAppLink(s.cfg.App.Booking.WhatsAppNumber, summary.Text())

	log.Info().Str("bookingID", record.ID).Str("roomID", record.RoomID).Int("nights", nights).Msg("booking created")

	event := notify.BookingCreated{
		BookingID:       record.ID,
		RoomID:          record.RoomID,
		Summary:         summary,
		Message:         summary.Text(),
		NotificationURL: link,
		CreatedAt:       timezone.Now(),
	}

	s.pending.Add(1)

	go func() {
		defer s.pending.Done()

		s.publish(ctx, event)
	}()

	return dto.Confirmation{
		BookingID:       record.ID,
		Message:         model.MessageSuccess,
		NotificationURL: link,
		TotalAmount:     total,
		Nights:          nights,
	}, nil
}

func (s *serviceImpl) releaseLock(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("cacheKey", key).Msg("failed to release submit lock")
	}
}

// publish never fails the submission; the booking is already stored.
func (s *serviceImpl) publish(ctx context.Context, event notify.BookingCreated) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := s.publisher.Publish(ctx, event)

	switch {
	case err == nil:
	case errors.Is(err, kafka.ErrDisabled):
		log.Debug().Str("bookingID", event.BookingID).Msg("event publishing disabled")
	default:
		log.Warn().Err(err).Str("bookingID", event.BookingID).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) Drain(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("booking events still pending: %w", ctx.Err())
	}
}
