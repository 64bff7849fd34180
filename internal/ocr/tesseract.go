package ocr

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Tesseract shells out to a local tesseract binary. Used when no remote
// OCR endpoint is configured.
type Tesseract struct{}

func NewTesseract() *Tesseract {
	return &Tesseract{}
}

func (t *Tesseract) Recognize(ctx context.Context, image string) (string, error) {
	data, err := decodeDataURL(image)
	if err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp("", "menu-*.img")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, "tesseract", tmpFile.Name(), "stdout")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func decodeDataURL(image string) ([]byte, error) {
	_, payload, ok := strings.Cut(image, "base64,")
	if !ok {
		return nil, errors.New("image is not a base64 data URL")
	}
	return base64.StdEncoding.DecodeString(payload)
}
