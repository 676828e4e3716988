package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayadmin/config"
	"stayadmin/infras/otel/mocks"
	bookingMocks "stayadmin/internal/domains/booking/mocks"
	"stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/booking/model/dto"
	"stayadmin/internal/domains/booking/service"
	guestdocMocks "stayadmin/internal/domains/guestdoc/mocks"
	kafkaMocks "stayadmin/infras/kafka/mocks"
	cacheMocks "stayadmin/shared/cache/mocks"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
	gModel "stayadmin/shared/model"
	"stayadmin/shared/timezone"
)

type serviceMocks struct {
	repo     *bookingMocks.MockBooking
	guestDoc *guestdocMocks.MockGuestDoc
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
}

func newService(ctrl *gomock.Controller) (service.Booking, serviceMocks) {
	m := serviceMocks{
		repo:     bookingMocks.NewMockBooking(ctrl),
		guestDoc: guestdocMocks.NewMockGuestDoc(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topic.BookingEvents = "booking-events"

	// Cache invalidation and event publication run in the background after writes.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(m.repo, m.guestDoc, cfg, m.cache, m.kafka, mocks.NewOtel()), m
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		GuestName:    "Asha Verma",
		Phone:        "9876543210",
		RatePerNight: "3000",
		Platform:     model.PlatformAirbnb,
		RoomID:       "SS1020",
		CheckIn:      "2025-03-10",
		CheckOut:     "2025-03-13",
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "successful creation assigns sequential id",
			req:  validCreateRequest(),
			setupMock: func() {
				m.repo.EXPECT().
					NextSequence(gomock.Any()).
					Return(int64(7), nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, "BK0007", booking.ID)
						assert.Equal(t, 3, booking.TotalNights)
						assert.Equal(t, "9000", booking.Payment)

						return nil
					})
			},
			wantID: "BK0007",
		},
		{
			name: "invalid date range",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.CheckOut = "2025-03-10"

				return req
			}(),
			setupMock: func() {
				m.repo.EXPECT().
					NextSequence(gomock.Any()).
					Return(int64(8), nil)
			},
			wantErr: true,
		},
		{
			name: "sequence error",
			req:  validCreateRequest(),
			setupMock: func() {
				m.repo.EXPECT().
					NextSequence(gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  validCreateRequest(),
			setupMock: func() {
				m.repo.EXPECT().
					NextSequence(gomock.Any()).
					Return(int64(9), nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "operator")
			id, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	booking := model.Booking{
		ID:        "BK0001",
		GuestName: "Asha Verma",
		Platform:  model.PlatformGoibibo,
		RoomID:    "SS1022",
		CheckIn:   timezone.Now(),
		CheckOut:  timezone.Now().AddDate(0, 0, 2),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "operator",
			ModifiedBy: "operator",
		},
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "BK0001",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, found in db",
			id:   "BK0001",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantID: "BK0001",
		},
		{
			name: "not found",
			id:   "BK9999",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	req := dto.UpdateBookingRequest{
		GuestName:    "Asha Verma",
		RatePerNight: "3500",
		Platform:     model.PlatformAgoda,
		RoomID:       "SS1124",
		CheckIn:      "2025-04-01",
		CheckOut:     "2025-04-04",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful full replace",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 3, fields[model.FieldTotalNights])
						assert.Equal(t, "10500", fields[model.FieldPayment])

						return nil
					})
			},
		},
		{
			name: "booking not found",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "operator")
			err := svc.Update(ctx, req, "BK0001")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	booking := model.Booking{
		ID:              "BK0001",
		AadhaarImageURL: "https://cdn.example.com/bucket/guest-ids/BK0001/0-abc.png",
	}

	m.guestDoc.EXPECT().
		DeleteForBooking(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete cascades to images",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "booking not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "BK0001")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	all := []model.Booking{
		{ID: "BK0001", Platform: model.PlatformAirbnb},
		{ID: "BK0002", Platform: model.PlatformAirbnb},
		{ID: "BK0003", Platform: model.PlatformOffline},
	}

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.repo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).
		Return(all, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(all, nil)

	res, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalBookings)
	assert.Len(t, res.PlatformBreakdown, len(model.Platforms))
	assert.Equal(t, model.PlatformAirbnb, res.PlatformBreakdown[0].Platform)
	assert.Equal(t, 2, res.PlatformBreakdown[0].Count)
	assert.Len(t, res.RecentBookings, 3)
}
