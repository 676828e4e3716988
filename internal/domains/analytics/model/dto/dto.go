package dto

import (
	"fmt"
	"time"

	"stayadmin/internal/domains/analytics/report"
	"stayadmin/internal/domains/booking/model"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
)

// FilterAll is the sentinel the dashboard sends when a dropdown is unset.
const FilterAll = "All"

// AnalyticsFilter carries the dashboard query string. Empty or "All" values
// leave that predicate off.
type AnalyticsFilter struct {
	Platform  string `json:"platform"   validate:"omitempty,max=20"`
	RoomID    string `json:"room_id"    validate:"omitempty,max=20"`
	StartDate string `json:"start_date" validate:"omitempty,isodate"`
	EndDate   string `json:"end_date"   validate:"omitempty,isodate"`
}

// ToFilterGroup renders the dashboard predicates: exact platform and room
// match, check-in on or after the start date, check-out on or before the end
// date.
func (f *AnalyticsFilter) ToFilterGroup() (gDto.FilterGroup, error) {
	filters := []any{}

	if f.Platform != constant.Empty && f.Platform != FilterAll {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldPlatform,
			Value:    f.Platform,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if f.RoomID != constant.Empty && f.RoomID != FilterAll {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    f.RoomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if f.StartDate != constant.Empty {
		startDate, err := time.Parse(constant.CalendarDateFormat, f.StartDate)
		if err != nil {
			return gDto.FilterGroup{}, fmt.Errorf("invalid start date: %w", err)
		}

		filters = append(filters, gDto.Filter{
			ArgName:  constant.RequestParamStartDate,
			Field:    model.FieldCheckIn,
			Value:    startDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if f.EndDate != constant.Empty {
		endDate, err := time.Parse(constant.CalendarDateFormat, f.EndDate)
		if err != nil {
			return gDto.FilterGroup{}, fmt.Errorf("invalid end date: %w", err)
		}

		filters = append(filters, gDto.Filter{
			ArgName:  constant.RequestParamEndDate,
			Field:    model.FieldCheckOut,
			Value:    endDate,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}, nil
}

type AnalyticsResponse struct {
	TotalBookings          int                                   `json:"total_bookings"`
	TotalRevenue           float64                               `json:"total_revenue"`
	PlatformShares         []report.PlatformShare                `json:"platform_shares"`
	RoomOccupancies        []report.RoomOccupancy                `json:"room_occupancies"`
	RevenueTrends          []report.RevenueTrend                 `json:"revenue_trends"`
	TopRooms               []report.TopRoom                      `json:"top_rooms"`
	MonthlyRoomPerformance map[string]map[string]report.RoomPerformance `json:"monthly_room_performance"`
}

func (r *AnalyticsResponse) FromModels(bookings []model.Booking) {
	r.TotalBookings = len(bookings)
	r.TotalRevenue = report.TotalRevenue(bookings)
	r.PlatformShares = report.PlatformShares(bookings)
	r.RoomOccupancies = report.RoomOccupancies(bookings)
	r.RevenueTrends = report.RevenueTrends(bookings)
	r.TopRooms = report.TopRooms(bookings)
	r.MonthlyRoomPerformance = report.MonthlyRoomPerformance(bookings)
}
