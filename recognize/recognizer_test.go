package recognize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticText(text string) Func {
	return func(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
		return text, nil
	}
}

func TestCompositeTextPassthrough(t *testing.T) {
	c := NewComposite(nil)

	text, err := c.Recognize(context.Background(), "notes.txt", "text/plain", []byte("plain contents"))
	require.NoError(t, err)
	assert.Equal(t, "plain contents", text)
}

func TestCompositeDispatchesImages(t *testing.T) {
	c := NewComposite(staticText("transcribed"))

	text, err := c.Recognize(context.Background(), "scan.png", "image/png", []byte{0x89, 0x50})
	require.NoError(t, err)
	assert.Equal(t, "transcribed", text)
}

func TestCompositeImagesWithoutBackend(t *testing.T) {
	c := NewComposite(nil)

	_, err := c.Recognize(context.Background(), "scan.png", "image/png", []byte{0x89, 0x50})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCompositeDispatchesPDFs(t *testing.T) {
	c := &Composite{PDF: staticText("pdf body")}

	text, err := c.Recognize(context.Background(), "doc.pdf", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "pdf body", text)
}

func TestCompositeUnsupportedType(t *testing.T) {
	c := NewComposite(staticText("never called"))

	_, err := c.Recognize(context.Background(), "archive.zip", "application/zip", nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
