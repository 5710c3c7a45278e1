package esolang

import (
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// LoadImage decodes the image at path with whichever registered codec
// recognises it. Any failure is reported as ErrImageLoad.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapError(ErrImageLoad, "Open %s, %v", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, wrapError(ErrImageLoad, "Decode %s, %v", path, err)
	}
	stdLogger.WithField("path", path).Debugf("Decoded %s image %v", format, img.Bounds().Size())

	return img, nil
}
