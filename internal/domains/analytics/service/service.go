package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"stayadmin/config"
	"stayadmin/infras/otel"
	"stayadmin/internal/domains/analytics/model/dto"
	bookingRepo "stayadmin/internal/domains/booking/repository"
	"stayadmin/shared"
	"stayadmin/shared/cache"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
	"stayadmin/shared/failure"
)

// CacheGetAnalytics is invalidated by booking writes as well.
const CacheGetAnalytics = "analytics:get"

type Analytics interface {
	Get(ctx context.Context, filter dto.AnalyticsFilter) (dto.AnalyticsResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Analytics {
	return &serviceImpl{
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Get computes the five dashboard views over the filtered booking set.
func (s *serviceImpl) Get(ctx context.Context, filter dto.AnalyticsFilter) (res dto.AnalyticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	filterGroup, err := filter.ToFilterGroup()
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKeyWithQuery(CacheGetAnalytics, gDto.QueryParams{}, filterGroup)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for analytics")

		return res, nil
	}

	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{}, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for analytics")

		return res, fmt.Errorf("failed to get bookings for analytics: %w", err)
	}

	res.FromModels(bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save analytics to cache")
		}
	}()

	return res, nil
}
