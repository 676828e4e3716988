package dto

import (
	"mime/multipart"
)

type UploadImageRequest struct {
	BookingID string                `json:"booking_id" validate:"required,max=20"`
	GuestSlot int                   `json:"guest_slot" validate:"gte=0"`
	Image     *multipart.FileHeader `json:"image"      swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type SignedURLRequest struct {
	Path string `json:"path" validate:"required,max=500"`
}

type SignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}
