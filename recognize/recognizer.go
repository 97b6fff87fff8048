// Package recognize turns uploaded document bytes into free text for
// the field extractor. Recognition accuracy is best-effort: callers
// must treat a failure as "no text for this file", never as a batch
// failure.
package recognize

import (
	"context"
	"errors"
	"strings"
)

// ErrUnsupportedType is returned for mime types no backend can read
var ErrUnsupportedType = errors.New("unsupported file type for text recognition")

// Recognizer extracts free text from one uploaded document
type Recognizer interface {
	Recognize(ctx context.Context, filename, mimeType string, data []byte) (string, error)
}

// Func adapts a plain function to the Recognizer interface, mainly so
// tests can inject deterministic text.
type Func func(ctx context.Context, filename, mimeType string, data []byte) (string, error)

// Recognize implements Recognizer
func (f Func) Recognize(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	return f(ctx, filename, mimeType, data)
}

// Composite dispatches to a backend by mime type: PDFs go to the
// pdf text extractor, images to the vision backend (when configured),
// and plain text passes through unchanged.
type Composite struct {
	PDF   Recognizer
	Image Recognizer
}

// NewComposite creates the default recognizer stack. image may be nil
// when no vision backend is configured; image uploads then fail with
// ErrUnsupportedType and are kept as metadata-only files.
func NewComposite(image Recognizer) *Composite {
	return &Composite{
		PDF:   NewPDFText(),
		Image: image,
	}
}

// Recognize implements Recognizer
func (c *Composite) Recognize(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	switch {
	case mimeType == "application/pdf":
		if c.PDF == nil {
			return "", ErrUnsupportedType
		}
		return c.PDF.Recognize(ctx, filename, mimeType, data)
	case strings.HasPrefix(mimeType, "image/"):
		if c.Image == nil {
			return "", ErrUnsupportedType
		}
		return c.Image.Recognize(ctx, filename, mimeType, data)
	case strings.HasPrefix(mimeType, "text/"):
		return string(data), nil
	default:
		return "", ErrUnsupportedType
	}
}
