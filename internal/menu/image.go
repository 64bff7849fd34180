package menu

import (
	"encoding/base64"
	"errors"
	"strings"
)

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// DecodeImage splits a base64 data URL into its media type and raw bytes.
func DecodeImage(image string) (string, []byte, error) {
	if !strings.HasPrefix(image, "data:") {
		return "", nil, errors.New("not a data URL")
	}

	meta, payload, ok := strings.Cut(image[len("data:"):], ",")
	if !ok {
		return "", nil, errors.New("malformed data URL")
	}

	mediaType, _, _ := strings.Cut(meta, ";")
	if !strings.Contains(meta, "base64") {
		return "", nil, errors.New("data URL is not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}

	return mediaType, data, nil
}

// ImageExtension maps a decoded media type to an object-key extension.
func ImageExtension(mediaType string) (string, error) {
	ext, ok := imageExt[strings.ToLower(mediaType)]
	if !ok {
		return "", errors.New("image type not allowed")
	}
	return ext, nil
}
