package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadURLPrefix is where saved pictures are served from.
const UploadURLPrefix = "/uploads"

// Errors caused by the uploaded file itself. Anything else SavePicture
// returns is a server fault.
var (
	ErrUnsupportedPicture = errors.New("picture must be a jpg, png or webp image")
	ErrPictureTooLarge    = errors.New("picture is too large")
)

var pictureExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// SavePicture copies an uploaded dish picture into destDir under a random
// name and returns that name.
func SavePicture(file *multipart.FileHeader, destDir string, maxSize int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !pictureExtensions[ext] {
		return "", ErrUnsupportedPicture
	}
	if maxSize > 0 && file.Size > maxSize {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrPictureTooLarge, maxSize)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(destDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create picture file: %w", err)
	}

	_, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write picture file: %w", err)
	}
	return name, nil
}

// RemovePicture deletes a picture saved by SavePicture. A missing file is not an error.
func RemovePicture(destDir, name string) error {
	err := os.Remove(filepath.Join(destDir, filepath.Base(name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// IsPictureRejected reports whether err was caused by the upload rather than the server.
func IsPictureRejected(err error) bool {
	return errors.Is(err, ErrUnsupportedPicture) || errors.Is(err, ErrPictureTooLarge)
}

// PictureURL is the public path of a picture saved by SavePicture.
func PictureURL(name string) string {
	if name == "" {
		return ""
	}
	return UploadURLPrefix + "/" + name
}
