package service

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	"tesouraria-ibs/config"
)

// NormalizePageImage flattens a captured page onto white and scales it to
// targetWidth pixels, keeping the aspect ratio. The result is PNG encoded.
func NormalizePageImage(imageData []byte, targetWidth int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	log := config.GetLogger()
	log.Debugf("📸 NormalizePageImage: format=%s, bounds=%v", format, bounds)

	// transparent regions would print black in some viewers
	background := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	var out image.Image = imaging.Overlay(background, img, image.Pt(0, 0), 1.0)

	if targetWidth > 0 && bounds.Dx() != targetWidth {
		log.Debugf("🔄 NormalizePageImage: resizing %dx%d -> width %d", bounds.Dx(), bounds.Dy(), targetWidth)
		out = imaging.Resize(out, targetWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// TargetPageWidth is the pixel width of an A4 page captured at pixelRatio
func TargetPageWidth(pixelRatio float64) int {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return int(float64(a4WidthPx)*pixelRatio + 0.5)
}
