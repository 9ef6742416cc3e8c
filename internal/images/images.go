// =============================================================================
// Export Document Generator - Branding Image Loader
// =============================================================================
//
// Loads the optional exporter header/footer/signature images. Each read is
// independent and order-irrelevant, so the slots are fetched concurrently.
// A missing or unreadable image is a warning, never an error: generation
// proceeds and the renderer simply omits that slot.
//
// =============================================================================

package images

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"
)

// Slot names a branding image position in the rendered workbook.
type Slot string

const (
	Header    Slot = "header"
	Footer    Slot = "footer"
	Signature Slot = "signature"
)

// Image is one loaded branding image with its decoded dimensions.
type Image struct {
	Slot   Slot
	Path   string
	Data   []byte
	Width  int
	Height int
}

// Set maps slots to successfully loaded images. Absent slots are legal.
type Set map[Slot]Image

// Warner receives non-fatal load failures.
type Warner interface {
	Warn(msg string, args ...interface{})
}

// Load reads every configured slot concurrently. Paths mapping to empty
// strings are skipped silently; read or decode failures are reported to the
// warner and the slot is omitted.
func Load(paths map[Slot]string, warner Warner) Set {
	set := make(Set)

	var mu sync.Mutex
	var wg sync.WaitGroup

	for slot, path := range paths {
		if path == "" {
			continue
		}
		wg.Add(1)
		go func(slot Slot, path string) {
			defer wg.Done()

			data, err := os.ReadFile(path)
			if err != nil {
				warner.Warn("image %s omitted: %v", slot, err)
				return
			}
			cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
			if err != nil {
				warner.Warn("image %s omitted: cannot decode %s: %v", slot, path, err)
				return
			}

			mu.Lock()
			set[slot] = Image{
				Slot:   slot,
				Path:   path,
				Data:   data,
				Width:  cfg.Width,
				Height: cfg.Height,
			}
			mu.Unlock()
		}(slot, path)
	}

	wg.Wait()
	return set
}
