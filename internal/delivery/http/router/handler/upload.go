package handler

import (
	"io"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// readUploadedImage reads the multipart "file" part of an upload request.
// Image type validation happens in the asset usecase.
func readUploadedImage(c echo.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", errors.New("missing file upload")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read uploaded file")
	}

	return data, fileHeader.Header.Get("Content-Type"), nil
}
