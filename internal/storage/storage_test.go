package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "my-first-post", Slugify("My First Post"))
	assert.Equal(t, "hello-world", Slugify("  Hello,   World!  "))
	assert.Equal(t, "post-42", Slugify("Post #42"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestHTMLFileName(t *testing.T) {
	now := time.Unix(1717171717, 0)
	assert.Equal(t, "1717171717-my-first-post.html", HTMLFileName("My First Post", now))
}

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()

	store, err := NewLocalStorage(Config{BasePath: dir})
	assert.NoError(t, err)

	url, err := store.Upload(context.Background(), "post.html", strings.NewReader("<p>hi</p>"), "text/html")
	assert.NoError(t, err)
	assert.Equal(t, "/blogs/post.html", url)

	written, err := os.ReadFile(filepath.Join(dir, "post.html"))
	assert.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(written))

	assert.NoError(t, store.Delete(context.Background(), "post.html"))
	_, err = os.Stat(filepath.Join(dir, "post.html"))
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing file is not an error
	assert.NoError(t, store.Delete(context.Background(), "post.html"))
}

func TestLocalStorage_CustomBaseURL(t *testing.T) {
	dir := t.TempDir()

	store, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "https://cdn.example.com/blogs"})
	assert.NoError(t, err)

	url, err := store.Upload(context.Background(), "post.html", strings.NewReader("x"), "text/html")
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/blogs/post.html", url)
}

func TestNewStorage(t *testing.T) {
	t.Run("Local", func(t *testing.T) {
		store, err := NewStorage(Config{Driver: "local", BasePath: t.TempDir()})
		assert.NoError(t, err)
		assert.IsType(t, &LocalStorage{}, store)
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		store, err := NewStorage(Config{Driver: "ftp"})
		assert.Nil(t, store)
		assert.Error(t, err)
	})
}
