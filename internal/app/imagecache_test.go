package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/weihan/gridmate/internal/common"
)

func TestImageCache_PutGet(t *testing.T) {
	cache := NewImageCache(t.TempDir(), 4242, common.NewSilentLogger())

	url, err := cache.Put("512400-bounds-20260828-0930.png", []byte("png-data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "/images/512400-bounds-20260828-0930.png" {
		t.Errorf("url = %s", url)
	}

	data, ok := cache.Get("512400-bounds-20260828-0930.png")
	if !ok || !bytes.Equal(data, []byte("png-data")) {
		t.Errorf("Get = %q, %v", data, ok)
	}

	if _, ok := cache.Get("missing.png"); ok {
		t.Error("expected miss for unknown name")
	}
}

func TestImageCache_CleansOldChartsForSymbol(t *testing.T) {
	dir := t.TempDir()
	cache := NewImageCache(dir, 4242, common.NewSilentLogger())

	if _, err := cache.Put("512400-bounds-20260827-0930.png", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Put("159995-bounds-20260827-0930.png", []byte("other")); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Put("512400-bounds-20260828-0930.png", []byte("new")); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "512400-bounds-20260827-0930.png")); !os.IsNotExist(err) {
		t.Error("older chart for the same symbol should be removed")
	}
	if _, ok := cache.Get("159995-bounds-20260827-0930.png"); !ok {
		t.Error("other symbols must be untouched")
	}
	if _, ok := cache.Get("512400-bounds-20260828-0930.png"); !ok {
		t.Error("latest chart must survive")
	}
}

func TestImageCache_Handler(t *testing.T) {
	cache := NewImageCache(t.TempDir(), 4242, common.NewSilentLogger())
	if _, err := cache.Put("512400-bounds-20260828-0930.png", []byte("png-data")); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/images/512400-bounds-20260828-0930.png", nil)
	rr := httptest.NewRecorder()
	cache.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d", rr.Code)
	}
	if rr.Body.String() != "png-data" {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestBoundsImageName(t *testing.T) {
	name := BoundsImageName("512400")
	if !strings.HasPrefix(name, "512400-bounds-") || !strings.HasSuffix(name, ".png") {
		t.Errorf("name = %s", name)
	}
}
