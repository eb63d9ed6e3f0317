package fetcher

import (
	"context"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"

	"github.com/rotisserie/eris"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// DecodeImage decodes a JPEG, PNG, GIF, BMP, TIFF or WebP image from a
// reader. Returns the image and the name of the format it was encoded in.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", eris.Wrap(err, "image: decode")
	}
	return img, format, nil
}

// GetImage downloads the URL and decodes the body as an image.
func GetImage(ctx context.Context, f Fetcher, url string) (image.Image, error) {
	body, err := f.Download(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	img, _, err := DecodeImage(body)
	if err != nil {
		return nil, eris.Wrapf(err, "image: %s", url)
	}
	return img, nil
}
