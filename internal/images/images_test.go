package images

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWarner struct {
	warnings []string
}

func (w *captureWarner) Warn(msg string, args ...interface{}) {
	w.warnings = append(w.warnings, msg)
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestLoadDecodesConfiguredSlots(t *testing.T) {
	dir := t.TempDir()
	headerPath := filepath.Join(dir, "header.png")
	writePNG(t, headerPath, 320, 64)

	warner := &captureWarner{}
	set := Load(map[Slot]string{
		Header:    headerPath,
		Footer:    "",
		Signature: "",
	}, warner)

	require.Len(t, set, 1)
	img, ok := set[Header]
	require.True(t, ok)
	assert.Equal(t, 320, img.Width)
	assert.Equal(t, 64, img.Height)
	assert.Equal(t, headerPath, img.Path)
	assert.NotEmpty(t, img.Data)
	assert.Empty(t, warner.warnings)
}

func TestLoadFailuresAreWarningsNotErrors(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "footer.png")
	require.NoError(t, os.WriteFile(badPath, []byte("not an image"), 0644))

	warner := &captureWarner{}
	set := Load(map[Slot]string{
		Header: filepath.Join(dir, "missing.png"),
		Footer: badPath,
	}, warner)

	assert.Empty(t, set)
	assert.Len(t, warner.warnings, 2)
}
