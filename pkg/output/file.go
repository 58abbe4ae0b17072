package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format identifies an image encoding and optional compression
type Format struct {
	Encoding    string // "png" or "ppm"
	Compression string // "", "gzip", "zstd" or "snappy"
}

// FormatForPath picks the format from a file name:
// .png, .ppm, .ppm.gz, .ppm.zst or .ppm.sz
func FormatForPath(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".png"):
		return Format{Encoding: "png"}, nil
	case strings.HasSuffix(name, ".ppm"):
		return Format{Encoding: "ppm"}, nil
	case strings.HasSuffix(name, ".ppm.gz"):
		return Format{Encoding: "ppm", Compression: "gzip"}, nil
	case strings.HasSuffix(name, ".ppm.zst"):
		return Format{Encoding: "ppm", Compression: "zstd"}, nil
	case strings.HasSuffix(name, ".ppm.sz"):
		return Format{Encoding: "ppm", Compression: "snappy"}, nil
	}
	return Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

// Write encodes canvas to w in the given format
func Write(w io.Writer, canvas *renderer.Canvas, format Format) error {
	stream, err := compressor(w, format.Compression)
	if err != nil {
		return err
	}

	switch format.Encoding {
	case "png":
		err = WritePNG(stream, canvas)
	case "ppm":
		err = WritePPM(stream, canvas)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format.Encoding)
	}

	// Close flushes compressed streams; it must run even when encoding failed
	if closeErr := stream.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close %s stream: %w", format.Compression, closeErr)
	}
	return err
}

// SaveFile writes canvas to path, creating parent directories as needed
func SaveFile(path string, canvas *renderer.Canvas) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Write(file, canvas, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func compressor(w io.Writer, compression string) (io.WriteCloser, error) {
	switch compression {
	case "":
		return nopCloser{w}, nil
	case "gzip":
		return gzip.NewWriter(w), nil
	case "zstd":
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("create zstd writer: %w", err)
		}
		return enc, nil
	case "snappy":
		return snappy.NewBufferedWriter(w), nil
	}
	return nil, fmt.Errorf("%w: compression %q", ErrUnsupportedFormat, compression)
}
