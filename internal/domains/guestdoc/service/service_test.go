package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayadmin/config"
	"stayadmin/infras/otel/mocks"
	s3Mocks "stayadmin/infras/s3/mocks"
	bookingModel "stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/guestdoc/model/dto"
	"stayadmin/internal/domains/guestdoc/service"
)

const testBucket = "stayadmin-test"

func newService(ctrl *gomock.Controller) (service.GuestDoc, *s3Mocks.MockS3) {
	s3Mock := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.BucketName = testBucket

	return service.New(cfg, mocks.NewOtel(), s3Mock), s3Mock
}

func TestUpload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, s3Mock := newService(ctrl)

		var uploadedDir, uploadedName string

		s3Mock.EXPECT().
			UploadFile(gomock.Any(), testBucket, "guest-ids/BK0007", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, directory string, _ multipart.File, _ *multipart.FileHeader, fileName string) (string, error) {
				uploadedDir = directory
				uploadedName = fileName

				return "https://" + testBucket + ".example.com/" + directory + "/" + fileName, nil
			})

		res, err := svc.Upload(context.Background(), dto.UploadImageRequest{
			BookingID: "BK0007",
			GuestSlot: 1,
			Image:     &multipart.FileHeader{Filename: "aadhaar.png"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "guest-ids/BK0007", uploadedDir)
		assert.True(t, strings.HasPrefix(uploadedName, "1-"))
		assert.True(t, strings.HasSuffix(uploadedName, ".png"))
		assert.Equal(t, uploadedName, res.FileName)
		assert.Contains(t, res.URL, uploadedName)
	})

	t.Run("upload error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, s3Mock := newService(ctrl)

		s3Mock.EXPECT().
			UploadFile(gomock.Any(), testBucket, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket unavailable"))

		_, err := svc.Upload(context.Background(), dto.UploadImageRequest{
			BookingID: "BK0007",
			Image:     &multipart.FileHeader{Filename: "aadhaar.png"},
		})

		assert.Error(t, err)
	})
}

func TestSignedURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, s3Mock := newService(ctrl)

	s3Mock.EXPECT().
		PresignGetURL(gomock.Any(), testBucket, "guest-ids/BK0007/0-abc.png", service.SignedURLExpiry).
		Return("https://signed.example.com/guest-ids/BK0007/0-abc.png?sig=xyz", nil)

	res, err := svc.SignedURL(context.Background(), "guest-ids/BK0007/0-abc.png")

	assert.NoError(t, err)
	assert.Contains(t, res.URL, "sig=xyz")
	assert.Equal(t, int(service.SignedURLExpiry.Seconds()), res.ExpiresIn)
}

func TestDeleteForBooking(t *testing.T) {
	booking := bookingModel.Booking{
		ID:              "BK0007",
		AadhaarImageURL: "https://" + testBucket + ".example.com/guest-ids/BK0007/0-abc.png",
		AdditionalGuests: bookingModel.GuestList{
			{Name: "Second Guest", AadhaarImageURL: "https://" + testBucket + ".example.com/guest-ids/BK0007/1-def.png"},
			{Name: "No Image Guest"},
		},
	}

	t.Run("deletes every referenced image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, s3Mock := newService(ctrl)

		s3Mock.EXPECT().GetObjectNameFromURL(testBucket, booking.AadhaarImageURL).Return("guest-ids/BK0007/0-abc.png")
		s3Mock.EXPECT().GetObjectNameFromURL(testBucket, booking.AdditionalGuests[0].AadhaarImageURL).Return("guest-ids/BK0007/1-def.png")
		s3Mock.EXPECT().DeleteFile(gomock.Any(), testBucket, "guest-ids/BK0007", "0-abc.png").Return(nil)
		s3Mock.EXPECT().DeleteFile(gomock.Any(), testBucket, "guest-ids/BK0007", "1-def.png").Return(nil)

		assert.NoError(t, svc.DeleteForBooking(context.Background(), booking))
	})

	t.Run("aggregates delete failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, s3Mock := newService(ctrl)

		s3Mock.EXPECT().GetObjectNameFromURL(testBucket, gomock.Any()).Return("guest-ids/BK0007/0-abc.png").Times(2)
		s3Mock.EXPECT().DeleteFile(gomock.Any(), testBucket, gomock.Any(), gomock.Any()).Return(errors.New("gone")).Times(2)

		err := svc.DeleteForBooking(context.Background(), booking)

		assert.ErrorIs(t, err, service.ErrDeleteImagesFromS3)
	})

	t.Run("nothing to delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newService(ctrl)

		assert.NoError(t, svc.DeleteForBooking(context.Background(), bookingModel.Booking{ID: "BK0008"}))
	})
}
