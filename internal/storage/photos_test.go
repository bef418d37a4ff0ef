package storage

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["photo"][0]
}

func TestSave(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.Save(fileHeader(t, "street.jpg", "jpeg bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/complaint-"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)

	f, err := store.Open(url)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestSaveRejectsNonImage(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(fileHeader(t, "report.pdf", "not an image"))
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestSaveRejectsOversized(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	fh := fileHeader(t, "big.png", "x")
	fh.Size = MaxPhotoSize + 1
	_, err = store.Save(fh)
	assert.ErrorIs(t, err, ErrPhotoTooLarge)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPhotoStore(dir)
	require.NoError(t, err)

	url, err := store.Save(fileHeader(t, "gone.png", "png bytes"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))

	// Removing twice is fine.
	assert.NoError(t, store.Remove(url))
}
