package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/daniilsolovey/site-admin/config"
)

var (
	// ErrNotFound is returned when the named image does not exist.
	ErrNotFound = errors.New("image not found")
	// ErrInvalidImage is returned when the payload cannot be decoded as an image.
	ErrInvalidImage = errors.New("invalid image data")
)

// Processor resizes uploaded images and stores them on disk as JPEG.
type Processor struct {
	dir     string
	width   int
	height  int
	quality int
	log     *slog.Logger
}

func NewProcessor(cfg config.Upload, log *slog.Logger) (*Processor, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", cfg.Dir, err)
	}

	return &Processor{
		dir:     cfg.Dir,
		width:   cfg.MaxWidth,
		height:  cfg.MaxHeight,
		quality: cfg.Quality,
		log:     log,
	}, nil
}

// Process decodes an uploaded image, scales it down to fit the configured
// bounds without upscaling smaller images, and writes it as a JPEG with a
// random name. It returns the stored file name.
func (p *Processor) Process(r io.Reader) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidImage, err)
	}

	resized := imaging.Fit(img, p.width, p.height, imaging.Lanczos)

	name := fmt.Sprintf("blog-%s.jpg", uuid.NewString())
	path := filepath.Join(p.dir, name)

	err = imaging.Save(resized, path, imaging.JPEGQuality(p.quality))
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	p.log.Debug("image stored", "name", name,
		"width", resized.Bounds().Dx(), "height", resized.Bounds().Dy())

	return name, nil
}

// Delete removes a stored image by name. The name is reduced to its base
// component so callers cannot reach outside the upload directory.
func (p *Processor) Delete(name string) error {
	base := filepath.Base(name)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return ErrNotFound
	}

	err := os.Remove(filepath.Join(p.dir, base))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", base, err)
	}

	return nil
}

// Path returns the on-disk path of a stored image, or ErrNotFound.
func (p *Processor) Path(name string) (string, error) {
	base := filepath.Base(name)
	path := filepath.Join(p.dir, base)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to stat image %s: %w", base, err)
	}

	return path, nil
}
