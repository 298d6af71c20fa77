package services

import (
	"context"
	"mime/multipart"

	"hotelhub/config"
	"hotelhub/errors"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadImage đẩy file lên Cloudinary, trả về secure URL
func UploadImage(ctx context.Context, file *multipart.FileHeader) (string, *errors.AppError) {
	if config.Cloudinary == nil {
		return "", errors.NewAppError(errors.ErrCodeDBError, "Cloudinary chưa được khởi tạo", nil)
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeValidation, "Không đọc được file upload", err)
	}
	defer src.Close()

	result, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder: "hotelhub",
	})
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeDBError, "Upload file không thành công", err)
	}

	return result.SecureURL, nil
}
