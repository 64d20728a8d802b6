package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/unidoc/unioffice/common"
	"github.com/unidoc/unioffice/measurement"

	"github.com/louisbranch/docsmith/internal/platform/errors"
)

// AddPicture appends an inline picture from a server-local path. Width and
// height are in inches; when only one is given the other is derived from the
// image's pixel aspect ratio, and when neither is given the natural size is
// kept. It returns the picture's base filename.
func (e *Editor) AddPicture(path string, widthInch, heightInch *float64) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireDocument(); err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.WithMetadata(errors.CodeImageNotFound,
				fmt.Sprintf("image file not found at %q", path),
				map[string]string{"path": path})
		}
		return "", errors.Wrap(errors.CodePictureRejected,
			fmt.Sprintf("stat image %q", path), err)
	}

	img, err := common.ImageFromFile(path)
	if err != nil {
		return "", errors.Wrap(errors.CodePictureRejected,
			fmt.Sprintf("read image %q", path), err)
	}
	ref, err := e.doc.AddImage(img)
	if err != nil {
		return "", errors.Wrap(errors.CodePictureRejected,
			fmt.Sprintf("attach image %q", path), err)
	}

	inline, err := e.doc.AddParagraph().AddRun().AddDrawingInline(ref)
	if err != nil {
		return "", errors.Wrap(errors.CodePictureRejected,
			fmt.Sprintf("place image %q", path), err)
	}

	if w, h, ok := pictureExtent(widthInch, heightInch, img.Size.X, img.Size.Y); ok {
		inline.SetSize(w, h)
	}

	return filepath.Base(path), nil
}

// pictureExtent computes the drawing extent for the requested size
// combination. The aspect ratio is preserved when only one dimension is
// requested; ok is false when the natural size should be kept.
func pictureExtent(widthInch, heightInch *float64, pxWidth, pxHeight int) (w, h measurement.Distance, ok bool) {
	switch {
	case widthInch != nil && heightInch != nil:
		return inches(*widthInch), inches(*heightInch), true
	case widthInch != nil:
		if pxWidth > 0 && pxHeight > 0 {
			derived := *widthInch * float64(pxHeight) / float64(pxWidth)
			return inches(*widthInch), inches(derived), true
		}
		return inches(*widthInch), inches(*widthInch), true
	case heightInch != nil:
		if pxWidth > 0 && pxHeight > 0 {
			derived := *heightInch * float64(pxWidth) / float64(pxHeight)
			return inches(derived), inches(*heightInch), true
		}
		return inches(*heightInch), inches(*heightInch), true
	default:
		return 0, 0, false
	}
}

func inches(v float64) measurement.Distance {
	return measurement.Distance(v) * measurement.Inch
}
