package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const logoMaxWidth = 800

// CompressToWebP decodes an uploaded image, bounds its width, and re-encodes
// it as webp. Returns the encoded bytes.
func CompressToWebP(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > logoMaxWidth {
		img = imaging.Resize(img, logoMaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveUpload writes processed image bytes under uploadDir/subdir and returns
// the relative URL path clients can fetch it from.
func SaveUpload(uploadDir, subdir, filename string, data []byte) (string, error) {
	dir := filepath.Join(uploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(path), nil
}
