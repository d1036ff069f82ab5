package media

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestStorage_SaveAndResolve(t *testing.T) {
	s := NewStorage(t.TempDir(), "/media")

	p, err := s.Save(fileHeader(t, "Logo.PNG", []byte("png-bytes")), "navigation")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, "navigation/"))
	assert.True(t, strings.HasSuffix(p, ".png"))

	assert.True(t, s.Exists(p))
	assert.Equal(t, "/media/"+p, s.URL(p))

	data, err := os.ReadFile(filepath.Join(s.Root, p))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, s.Delete(p))
	assert.False(t, s.Exists(p))
	require.NoError(t, s.Delete(p))
}

func TestStorage_RejectsUploads(t *testing.T) {
	s := NewStorage(t.TempDir(), "/media/")

	_, err := s.Save(fileHeader(t, "script.exe", []byte("x")), "news")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	big := bytes.Repeat([]byte("a"), MaxUploadSize+1)
	_, err = s.Save(fileHeader(t, "big.jpg", big), "news")
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestStorage_ExistsAndURL(t *testing.T) {
	s := NewStorage(t.TempDir(), "/media/")

	assert.False(t, s.Exists(""))
	assert.False(t, s.Exists("homepage/missing.jpg"))
	assert.False(t, s.Exists("../etc/passwd"))

	require.NoError(t, os.MkdirAll(filepath.Join(s.Root, "homepage"), 0755))
	assert.False(t, s.Exists("homepage"))

	assert.Equal(t, "", s.URL(""))
	assert.Equal(t, "https://cdn.example.com/a.jpg", s.URL("https://cdn.example.com/a.jpg"))
	assert.Equal(t, "/media/homepage/a.jpg", s.URL("/homepage/a.jpg"))
}
