package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"stayadmin/config"
	"stayadmin/infras/kafka"
	"stayadmin/infras/otel"
	analyticsService "stayadmin/internal/domains/analytics/service"
	"stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/booking/model/dto"
	"stayadmin/internal/domains/booking/repository"
	guestdocService "stayadmin/internal/domains/guestdoc/service"
	occupancyService "stayadmin/internal/domains/occupancy/service"
	"stayadmin/shared"
	"stayadmin/shared/cache"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
	"stayadmin/shared/failure"
	"stayadmin/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheStatsBooking  = "booking:stats"

	recentBookingsLimit = 5
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	guestDoc guestdocService.GuestDoc
	cfg      *config.Config
	cache    cache.RedisCache
	kafka    kafka.Client
	otel     otel.Otel
}

func New(repo repository.Booking, guestDoc guestdocService.GuestDoc, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		guestDoc: guestDoc,
		cfg:      cfg,
		cache:    cache,
		kafka:    kafkaClient,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	seq, err := s.repo.NextSequence(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to assign booking id")

		return constant.Empty, fmt.Errorf("failed to assign booking id: %w", err)
	}

	id = model.FormatID(seq)

	booking, err := req.ToModel(id, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return constant.Empty, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return constant.Empty, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateReadCaches(c)

		s.publishEvent(c, dto.EventActionCreated, booking)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update replaces the stored document wholesale, recomputing payment and
// total nights from the submitted dates and rates.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("booking not found")

		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	updatedFields, err := req.ToFieldMap(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking update request")

		return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		s.invalidateReadCaches(c)

		s.publishEvent(c, dto.EventActionUpdated, model.Booking{ID: id, RoomID: req.RoomID, Platform: req.Platform})
	}()

	return nil
}

// Delete removes the booking and cascades to its uploaded guest ID images.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for deletion")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Error().Str("id", id).Msg("booking not found")

		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		s.invalidateReadCaches(c)

		if err := s.guestDoc.DeleteForBooking(c, booking); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to delete guest ID images")
		}

		s.publishEvent(c, dto.EventActionDeleted, booking)
	}()

	return nil
}

// Stats reports the platform breakdown plus the five most recent bookings by
// entry date.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStatsBooking, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheStatsBooking).Msg("cache hit for booking stats")

		return res, nil
	}

	all, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for stats")

		return res, fmt.Errorf("failed to get bookings for stats: %w", err)
	}

	recent, err := s.repo.GetAll(ctx, gDto.QueryParams{
		Limit:   recentBookingsLimit,
		SortBy:  model.FieldEntryDate,
		SortDir: constant.DefaultValueSortDir,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.FromModels(all, recent)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStatsBooking, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking stats to cache")
		}
	}()

	return res, nil
}

// invalidateReadCaches drops every derived read model after a write: booking
// lists and stats plus the analytics and occupancy views built from them.
func (s *serviceImpl) invalidateReadCaches(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheStatsBooking)
	shared.InvalidateCaches(ctx, s.cache, analyticsService.CacheGetAnalytics)
	shared.InvalidateCaches(ctx, s.cache, occupancyService.CacheGetCalendar)
}

// publishEvent emits a lifecycle event. Failures are logged and swallowed so
// messaging trouble never fails a booking write.
func (s *serviceImpl) publishEvent(ctx context.Context, action string, booking model.Booking) {
	topic := s.cfg.Kafka.Topic.BookingEvents
	if topic == constant.Empty {
		return
	}

	event := dto.BookingEvent{
		Action:     action,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		Platform:   booking.Platform,
		OccurredAt: timezone.Now(),
	}

	if err := s.kafka.SendMessages(ctx, topic, kafka.Message{Key: booking.ID, Value: event}); err != nil {
		log.Error().Err(err).Str("action", action).Msg("failed to publish booking event")
	}
}
