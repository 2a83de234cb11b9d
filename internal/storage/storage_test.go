package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/static/")

	url, err := store.Put(context.Background(), "renders/a.png", strings.NewReader("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/static/renders/a.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "renders", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
}

func TestLocalStoreRejectsEscapingKeys(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/static")

	url, err := store.Put(context.Background(), "../../etc/passwd", strings.NewReader("x"), "")
	require.NoError(t, err)
	assert.Equal(t, "/static/etc/passwd", url, "keys are cleaned to stay inside the directory")

	_, err = store.Put(context.Background(), "", strings.NewReader("x"), "")
	assert.Error(t, err)
}

func TestValidateImageExtension(t *testing.T) {
	assert.NoError(t, ValidateImageExtension("garden.JPG"))
	assert.NoError(t, ValidateImageExtension("yard.webp"))
	assert.ErrorIs(t, ValidateImageExtension("noext"), ErrMissingExtension)
	assert.ErrorIs(t, ValidateImageExtension("plan.pdf"), ErrFileType)
}

func TestUploadMultipartFile(t *testing.T) {
	header := buildFileHeader(t, "file", "Backyard.PNG", []byte("image-bytes"))
	store := NewLocalStore(t.TempDir(), "/static")

	url, err := UploadMultipartFile(context.Background(), store, "/uploads/", header)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/static/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)
}

func TestUploadMultipartFileRejectsType(t *testing.T) {
	header := buildFileHeader(t, "file", "notes.txt", []byte("hello"))

	_, err := UploadMultipartFile(context.Background(), NewLocalStore(t.TempDir(), "/static"), "uploads", header)
	assert.ErrorIs(t, err, ErrFileType)
}

func buildFileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}
