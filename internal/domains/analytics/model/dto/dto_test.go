package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayadmin/internal/domains/analytics/model/dto"
	"stayadmin/internal/domains/booking/model"
	gDto "stayadmin/shared/dto"
)

func TestToFilterGroup(t *testing.T) {
	t.Run("all predicates set", func(t *testing.T) {
		filter := dto.AnalyticsFilter{
			Platform:  model.PlatformAirbnb,
			RoomID:    "SS1020",
			StartDate: "2025-01-01",
			EndDate:   "2025-01-31",
		}

		group, err := filter.ToFilterGroup()

		assert.NoError(t, err)
		assert.Equal(t, gDto.FilterGroupOperatorAnd, group.Operator)
		assert.Len(t, group.Filters, 4)

		first, ok := group.Filters[0].(gDto.Filter)
		assert.True(t, ok)
		assert.Equal(t, model.FieldPlatform, first.Field)
		assert.Equal(t, model.PlatformAirbnb, first.Value)

		last, ok := group.Filters[3].(gDto.Filter)
		assert.True(t, ok)
		assert.Equal(t, model.FieldCheckOut, last.Field)
		assert.Equal(t, gDto.FilterOperatorLessEq, last.Operator)
		assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), last.Value)
	})

	t.Run("All sentinel leaves predicates off", func(t *testing.T) {
		filter := dto.AnalyticsFilter{
			Platform: dto.FilterAll,
			RoomID:   dto.FilterAll,
		}

		group, err := filter.ToFilterGroup()

		assert.NoError(t, err)
		assert.Empty(t, group.Filters)
	})

	t.Run("empty filter has no predicates", func(t *testing.T) {
		group, err := (&dto.AnalyticsFilter{}).ToFilterGroup()

		assert.NoError(t, err)
		assert.Empty(t, group.Filters)
	})

	t.Run("invalid start date", func(t *testing.T) {
		filter := dto.AnalyticsFilter{StartDate: "01-01-2025"}

		_, err := filter.ToFilterGroup()

		assert.Error(t, err)
	})

	t.Run("invalid end date", func(t *testing.T) {
		filter := dto.AnalyticsFilter{EndDate: "not-a-date"}

		_, err := filter.ToFilterGroup()

		assert.Error(t, err)
	})
}
