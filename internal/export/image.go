package export

import (
	"image"
	"image/jpeg"
	"os"

	"github.com/rotisserie/eris"
)

// WriteJPEG encodes img as JPEG at the given quality and writes it to path.
func WriteJPEG(path string, img image.Image, quality int) error {
	if img == nil {
		return eris.New("export: nil image")
	}
	file, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer file.Close() //nolint:errcheck

	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: quality}); err != nil {
		return eris.Wrapf(err, "export: encode %s", path)
	}
	return nil
}
