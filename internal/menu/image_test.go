package menu

import "testing"

func TestDecodeImage(t *testing.T) {
	mediaType, data, err := DecodeImage("data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if mediaType != "image/png" {
		t.Errorf("expected image/png, got %q", mediaType)
	}
	if string(data) != "hello" {
		t.Errorf("expected decoded payload, got %q", data)
	}
}

func TestDecodeImage_Rejects(t *testing.T) {
	cases := []string{
		"",
		"https://example.com/menu.jpg",
		"data:image/png,plain-not-base64",
		"data:image/png;base64,!!!not-base64!!!",
	}
	for _, image := range cases {
		if _, _, err := DecodeImage(image); err == nil {
			t.Errorf("expected error for %q", image)
		}
	}
}

func TestImageExtension(t *testing.T) {
	ext, err := ImageExtension("image/jpeg")
	if err != nil {
		t.Fatalf("ImageExtension failed: %v", err)
	}
	if ext != ".jpg" {
		t.Errorf("expected .jpg, got %q", ext)
	}

	if _, err := ImageExtension("application/pdf"); err == nil {
		t.Error("expected error for non-image type")
	}
}
