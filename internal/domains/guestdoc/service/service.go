package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stayadmin/config"
	"stayadmin/infras/otel"
	"stayadmin/infras/s3"
	bookingModel "stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/guestdoc/model/dto"
	"stayadmin/shared/constant"
)

// EntityName doubles as the root directory of guest ID objects in the bucket.
const EntityName = "guest-ids"

// SignedURLExpiry bounds how long a shared guest document link stays valid.
const SignedURLExpiry = time.Hour

var ErrDeleteImagesFromS3 = errors.New("failed to delete guest ID images from S3")

type GuestDoc interface {
	Upload(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	SignedURL(ctx context.Context, objectPath string) (dto.SignedURLResponse, error)
	DeleteForBooking(ctx context.Context, booking bookingModel.Booking) error
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(cfg *config.Config, otel otel.Otel, s3 s3.S3) GuestDoc {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

// Upload stores a guest ID image under the booking's directory. The object
// name carries the guest slot plus a random suffix, so re-uploading a slot
// never overwrites the previous file.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName
	directory := path.Join(EntityName, req.BookingID)
	fileName := fmt.Sprintf("%d-%s%s", req.GuestSlot, uuid.NewString(), path.Ext(req.Image.Filename))

	url, err := s.s3.UploadFile(ctx, bucketName, directory, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to upload guest ID image")

		return res, fmt.Errorf("failed to upload guest ID image: %w", err)
	}

	res.FromModel(url, fileName)

	return res, nil
}

// SignedURL produces a one-hour presigned link for a stored object path.
func (s *serviceImpl) SignedURL(ctx context.Context, objectPath string) (res dto.SignedURLResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignedURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.PresignGetURL(ctx, bucketName, objectPath, SignedURLExpiry)
	if err != nil {
		log.Error().Err(err).Str("path", objectPath).Msg("failed to presign guest ID image URL")

		return res, fmt.Errorf("failed to presign guest ID image URL: %w", err)
	}

	res.URL = url
	res.ExpiresIn = int(SignedURLExpiry.Seconds())

	return res, nil
}

// DeleteForBooking removes every guest ID image the booking references, the
// primary guest's and the additional guests' alike.
func (s *serviceImpl) DeleteForBooking(ctx context.Context, booking bookingModel.Booking) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	urls := []string{}

	if booking.AadhaarImageURL != constant.Empty {
		urls = append(urls, booking.AadhaarImageURL)
	}

	for _, guest := range booking.AdditionalGuests {
		if guest.AadhaarImageURL != constant.Empty {
			urls = append(urls, guest.AadhaarImageURL)
		}
	}

	bucketName := s.cfg.External.S3.BucketName
	directory := path.Join(EntityName, booking.ID)

	var deleteErrors []error

	for _, imageURL := range urls {
		objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

			continue
		}

		// Stored object names include the directory prefix already.
		objectName = path.Base(objectName)

		if err := s.s3.DeleteFile(ctx, bucketName, directory, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete guest ID image")
			deleteErrors = append(deleteErrors, err)
		}
	}

	if len(deleteErrors) > 0 {
		return fmt.Errorf("%w: %d images", ErrDeleteImagesFromS3, len(deleteErrors))
	}

	return nil
}
