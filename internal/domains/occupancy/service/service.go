package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"stayadmin/config"
	"stayadmin/infras/otel"
	bookingModel "stayadmin/internal/domains/booking/model"
	bookingRepo "stayadmin/internal/domains/booking/repository"
	"stayadmin/internal/domains/occupancy/calendar"
	"stayadmin/internal/domains/occupancy/model/dto"
	"stayadmin/shared"
	"stayadmin/shared/cache"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
)

// CacheGetCalendar is invalidated by booking writes as well.
const CacheGetCalendar = "occupancy:calendar"

type Occupancy interface {
	Calendar(ctx context.Context, year int, month time.Month) (dto.CalendarResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Occupancy {
	return &serviceImpl{
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Calendar lays the month's occupancy out. Bookings are ordered by id, the
// creation order, so stacking slots stay stable between renders.
func (s *serviceImpl) Calendar(ctx context.Context, year int, month time.Month) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(CacheGetCalendar, fmt.Sprintf("%04d-%02d", year, month))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for occupancy calendar")

		return res, nil
	}

	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{
		SortBy:  bookingModel.FieldID,
		SortDir: "ASC",
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for occupancy calendar")

		return res, fmt.Errorf("failed to get bookings for occupancy calendar: %w", err)
	}

	dates := calendar.Dates(year, month)
	bars := calendar.Bars(dates, bookings)

	res.FromModels(year, month, dates, bars)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save occupancy calendar to cache")
		}
	}()

	return res, nil
}
