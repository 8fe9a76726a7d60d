package media

import (
	"bytes"
	"context"
	"crypto/tls"
	"image"
	"image/color"
	"image/png"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestLinkerBuildsAbsoluteURL(t *testing.T) {
	is := is.New(t)

	req := httptest.NewRequest("GET", "/api/categories/", nil)
	links := NewLinking("/media/", false).For(req)

	is.Equal(*links.URL("category_icons/beach.png"), "http://example.com/media/category_icons/beach.png")
	is.Equal(links.URL(""), nil)
}

func TestLinkerEscapesNames(t *testing.T) {
	is := is.New(t)

	links := Linker{Scheme: "http", Host: "localhost:8000", Prefix: "/media"}

	is.Equal(*links.URL("spot_images/old town#1.jpg"), "http://localhost:8000/media/spot_images/old%20town%231.jpg")
}

func TestLinkerUsesTLSScheme(t *testing.T) {
	is := is.New(t)

	req := httptest.NewRequest("GET", "/api/spots/", nil)
	req.TLS = &tls.ConnectionState{}

	is.Equal(*NewLinking("/media/", false).For(req).URL("a.png"), "https://example.com/media/a.png")
}

func TestLinkerForwardedHeaders(t *testing.T) {
	is := is.New(t)

	req := httptest.NewRequest("GET", "/api/spots/", nil)
	req.Header.Set("X-Forwarded-Proto", "https, http")
	req.Header.Set("X-Forwarded-Host", "maps.example.org")

	is.Equal(*NewLinking("/media/", false).For(req).URL("a.png"), "http://example.com/media/a.png")
	is.Equal(*NewLinking("/media/", true).For(req).URL("a.png"), "https://maps.example.org/media/a.png")
}

func TestLinkerKeepsAbsolutePrefix(t *testing.T) {
	is := is.New(t)

	req := httptest.NewRequest("GET", "/api/spots/", nil)
	links := NewLinking("https://cdn.example.net/media/", false).For(req)

	is.Equal(*links.URL("spot_images/a.png"), "https://cdn.example.net/media/spot_images/a.png")
}

func TestValidFilename(t *testing.T) {
	is := is.New(t)

	is.Equal(ValidFilename("../../etc/passwd"), "passwd")
	is.Equal(ValidFilename(`C:\photos\my beach.png`), "my_beach.png")
	is.Equal(ValidFilename("héllo?*.jpg"), "héllo.jpg")
	is.Equal(ValidFilename(".."), "upload")
}

func TestLocalStorageNeverOverwrites(t *testing.T) {
	is := is.New(t)
	root := t.TempDir()
	store := NewLocalStorage(root)

	first, err := store.Save(context.Background(), SpotImagesDir, "cliff.png", strings.NewReader("one"))
	is.NoErr(err)
	is.Equal(first, "spot_images/cliff.png")

	second, err := store.Save(context.Background(), SpotImagesDir, "cliff.png", strings.NewReader("two"))
	is.NoErr(err)
	is.True(second != first)
	is.True(strings.HasPrefix(second, "spot_images/cliff_"))
	is.True(strings.HasSuffix(second, ".png"))

	b, err := os.ReadFile(filepath.Join(root, "spot_images", "cliff.png"))
	is.NoErr(err)
	is.Equal(string(b), "one")
}

func TestCheckImage(t *testing.T) {
	is := is.New(t)

	is.NoErr(CheckImage(bytes.NewReader(pngBytes(t))))
	is.Equal(CheckImage(strings.NewReader("definitely not an image")), ErrInvalidImage)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
