package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/site-admin/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProcessor(t *testing.T) *Processor {
	t.Helper()

	p, err := NewProcessor(config.Upload{
		Dir:       t.TempDir(),
		MaxWidth:  800,
		MaxHeight: 600,
		Quality:   80,
	}, testLogger())
	require.NoError(t, err)
	return p
}

func pngImage(t *testing.T, width, height int) io.Reader {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestProcessor_Process(t *testing.T) {
	p := testProcessor(t)

	t.Run("StoresJPEGWithGeneratedName", func(t *testing.T) {
		name, err := p.Process(pngImage(t, 100, 100))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(name, "blog-"))
		assert.True(t, strings.HasSuffix(name, ".jpg"))

		path, err := p.Path(name)
		require.NoError(t, err)
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("LargeImageScaledDownToFit", func(t *testing.T) {
		name, err := p.Process(pngImage(t, 1600, 1600))
		require.NoError(t, err)

		path, err := p.Path(name)
		require.NoError(t, err)

		stored, err := imaging.Open(path)
		require.NoError(t, err)
		assert.LessOrEqual(t, stored.Bounds().Dx(), 800)
		assert.LessOrEqual(t, stored.Bounds().Dy(), 600)
	})

	t.Run("SmallImageNotUpscaled", func(t *testing.T) {
		name, err := p.Process(pngImage(t, 50, 40))
		require.NoError(t, err)

		path, err := p.Path(name)
		require.NoError(t, err)

		stored, err := imaging.Open(path)
		require.NoError(t, err)
		assert.Equal(t, 50, stored.Bounds().Dx())
		assert.Equal(t, 40, stored.Bounds().Dy())
	})

	t.Run("NonImageDataRejected", func(t *testing.T) {
		_, err := p.Process(strings.NewReader("definitely not an image"))
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("UniqueNamesPerUpload", func(t *testing.T) {
		first, err := p.Process(pngImage(t, 10, 10))
		require.NoError(t, err)
		second, err := p.Process(pngImage(t, 10, 10))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestProcessor_Delete(t *testing.T) {
	p := testProcessor(t)

	t.Run("RemovesStoredImage", func(t *testing.T) {
		name, err := p.Process(pngImage(t, 10, 10))
		require.NoError(t, err)

		require.NoError(t, p.Delete(name))

		_, err = p.Path(name)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("MissingImageReturnsNotFound", func(t *testing.T) {
		assert.ErrorIs(t, p.Delete("blog-nope.jpg"), ErrNotFound)
	})

	t.Run("PathTraversalConfined", func(t *testing.T) {
		outside := filepath.Join(t.TempDir(), "secret.txt")
		require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

		err := p.Delete("../" + outside)
		assert.Error(t, err)

		_, statErr := os.Stat(outside)
		assert.NoError(t, statErr)
	})
}
