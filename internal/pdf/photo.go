package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	// register decoders for the formats browsers upload
	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// maxPhotoPx bounds the longest edge of the embedded photo. Uploads are
// re-encoded as JPEG so the PDF always embeds a single, predictable format.
const maxPhotoPx = 400

// decodePhoto turns the submitted base64 profile photo (data-URI prefix
// tolerated) into JPEG bytes scaled to fit a maxPhotoPx bounding box, plus
// the resulting aspect ratio (width/height). Callers treat any error as a
// soft failure: the document renders without the photo.
func decodePhoto(encoded string) ([]byte, float64, error) {
	encoded = strings.TrimSpace(encoded)
	if idx := strings.Index(encoded, ","); idx >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, 0, fmt.Errorf("base64 decode photo: %w", err)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, 0, fmt.Errorf("decode photo image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, 0, fmt.Errorf("photo has empty bounds")
	}

	// Scaling into RGBA also normalizes palette/gray/NRGBA color modes.
	dw, dh := fitWithin(w, h, maxPhotoPx)
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, 0, fmt.Errorf("encode photo jpeg: %w", err)
	}

	return buf.Bytes(), float64(dw) / float64(dh), nil
}

// fitWithin scales (w,h) down proportionally so the longest edge is at most
// max. Images already inside the box keep their size.
func fitWithin(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		return max, h * max / w
	}
	return w * max / h, max
}
