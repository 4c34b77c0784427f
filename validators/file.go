package validators

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileNameTooLong     = errors.New("file name is too long")
	ErrFileTypeUnsupported = errors.New("unsupported file type")
	ErrNoFile              = errors.New("no file provided")
)

const maxFileNameSize = 255

// FileValidator checks an uploaded file against the configured size
// limit and, when upload.allowed_types is set, sniffs the actual
// content type instead of trusting the multipart header. Returns the
// opened file rewound to the start, and a non-zero HTTP status on
// failure.
func FileValidator(fh *multipart.FileHeader) (int, multipart.File, error) {
	if fh == nil {
		return http.StatusBadRequest, nil, ErrNoFile
	}

	if len(fh.Filename) > maxFileNameSize {
		return http.StatusBadRequest, nil, ErrFileNameTooLong
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, nil, ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, nil, err
	}

	allowed := viper.GetStringSlice("upload.allowed_types")
	if len(allowed) > 0 {
		mime, err := mimetype.DetectReader(f)
		if err != nil {
			f.Close()
			return http.StatusInternalServerError, nil, err
		}

		ok := false
		for _, t := range allowed {
			if mime.Is(t) {
				ok = true
				break
			}
		}

		if !ok {
			f.Close()
			return http.StatusBadRequest, nil, ErrFileTypeUnsupported
		}

		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return http.StatusInternalServerError, nil, err
		}
	}

	return 0, f, nil
}
