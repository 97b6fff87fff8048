package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRoundTrip(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	fileID := uuid.New()

	path, err := store.Upload(ctx, fileID, "marriage certificate.pdf", bytes.NewReader([]byte("%PDF-1.4 test")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, fileID.String()[:2]+"/"))
	assert.Contains(t, path, "marriage_certificate")
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	reader, err := store.Download(ctx, path)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	reader.Close()
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(data))

	require.NoError(t, store.Delete(ctx, path))
	_, err = store.Download(ctx, path)
	assert.Error(t, err)
}

func TestLocalDeleteMissingFile(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "ab/nope.pdf"))
}

func TestStoragePathFor(t *testing.T) {
	fileID := uuid.MustParse("12345678-0000-0000-0000-000000000000")

	path := storagePathFor(fileID, "my file/name.pdf")
	assert.Equal(t, "12/12345678-0000-0000-0000-000000000000_name.pdf", path)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeFor("Doc.PDF"))
	assert.Equal(t, "text/plain", contentTypeFor("notes.txt"))
	assert.Equal(t, "image/jpeg", contentTypeFor("scan.jpeg"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("archive.zip"))
}
