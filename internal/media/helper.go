package media

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/openmuseum/collections-import/internal/emu"
)

// ResizeMode selects how an image is mapped onto the target dimensions.
type ResizeMode int

const (
	// ResizeModeCrop fills the target box and crops overflow around the centre.
	ResizeModeCrop ResizeMode = iota
	// ResizeModeFit scales to fit inside the box, keeping aspect ratio.
	ResizeModeFit
	// ResizeModePad fits inside the box and pads the remainder with white.
	ResizeModePad
)

// ResizeSpec describes one image derivative.
type ResizeSpec struct {
	Width   int
	Height  int
	Mode    ResizeMode
	Quality int
}

// Helper fetches multimedia resources from the source system and writes
// derivative files under the media root.
type Helper struct {
	module emu.Module
	root   string
}

// NewHelper creates a Helper storing files under root.
func NewHelper(provider emu.ModuleProvider, root string) *Helper {
	return &Helper{
		module: provider.Module("emultimedia"),
		root:   root,
	}
}

// Save fetches the resource for irn and writes it as the named derivative.
// When resize is non-nil the resource is decoded, resized per the spec and
// re-encoded; otherwise the raw stream is copied verbatim. An existing file at
// the destination is overwritten.
//
// Returns (false, nil) when the source reports the resolution missing. That
// condition resolves itself once the source data is fixed and a later import
// picks the record up again, so the document is imported without the
// derivative. Any other error aborts the caller.
func (h *Helper) Save(ctx context.Context, irn int64, format Format, resize *ResizeSpec, derivative string) (bool, error) {
	resource, err := h.module.FetchResource(ctx, irn)
	if err != nil {
		if errors.Is(err, emu.ErrResolutionNotFound) {
			log.Printf("WARN: unable to save media %d at this time: %v", irn, err)
			return false, nil
		}
		return false, fmt.Errorf("fetch resource %d: %w", irn, err)
	}
	defer resource.Close()

	destPath := DestPath(h.root, irn, format, derivative)
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return false, fmt.Errorf("create media directory: %w", err)
	}

	if resize != nil {
		if err := saveResized(resource, destPath, resize); err != nil {
			return false, fmt.Errorf("resize media %d: %w", irn, err)
		}
		return true, nil
	}

	if err := saveRaw(resource, destPath); err != nil {
		return false, fmt.Errorf("save media %d: %w", irn, err)
	}
	return true, nil
}

func saveResized(r io.Reader, destPath string, spec *ResizeSpec) error {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	var out image.Image
	switch spec.Mode {
	case ResizeModeCrop:
		out = imaging.Fill(src, spec.Width, spec.Height, imaging.Center, imaging.Lanczos)
	case ResizeModePad:
		fitted := imaging.Fit(src, spec.Width, spec.Height, imaging.Lanczos)
		canvas := imaging.New(spec.Width, spec.Height, color.White)
		out = imaging.PasteCenter(canvas, fitted)
	default:
		out = imaging.Fit(src, spec.Width, spec.Height, imaging.Lanczos)
	}

	quality := spec.Quality
	if quality <= 0 {
		quality = 85
	}
	if err := imaging.Save(out, destPath, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	return nil
}

func saveRaw(r io.Reader, destPath string) error {
	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(destPath)
		return fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}
