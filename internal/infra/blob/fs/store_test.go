package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"starcore/internal/blob/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("constructing store failed: %v", err)
	}
	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	info, err := store.Put(ctx, "stars/7/snap.json", strings.NewReader(`{"id":7}`), core.PutOptions{
		ContentType: "application/json",
		Metadata:    map[string]string{"star_name": "Vega"},
	})
	if err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if info.ETag == "" {
		t.Fatalf("expected sha256 etag")
	}

	got, rc, err := store.Get(ctx, "stars/7/snap.json")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != `{"id":7}` {
		t.Fatalf("unexpected body %q", body)
	}
	if got.ETag != info.ETag || got.Metadata["star_name"] != "Vega" {
		t.Fatalf("sidecar metadata mismatch: %+v", got)
	}
}

func TestPutIsCreateOnly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	if _, err := store.Put(ctx, "k", strings.NewReader("a"), core.PutOptions{}); err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	if _, err := store.Put(ctx, "k", strings.NewReader("b"), core.PutOptions{}); err == nil {
		t.Fatalf("expected duplicate key rejection")
	}
}

func TestKeySanitization(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	for _, key := range []string{"", "  ", "../escape", "/absolute", "a/../../b"} {
		if _, err := store.Put(ctx, key, strings.NewReader("x"), core.PutOptions{}); err == nil {
			t.Fatalf("key %q must be rejected", key)
		}
	}
}

func TestListWalksNestedKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	for _, key := range []string{"stars/1/b.json", "stars/1/a.json", "stars/2/a.json"} {
		if _, err := store.Put(ctx, key, strings.NewReader("x"), core.PutOptions{}); err != nil {
			t.Fatalf("put %s failed: %v", key, err)
		}
	}
	infos, err := store.List(ctx, "stars/1/")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(infos) != 2 || infos[0].Key != "stars/1/a.json" {
		t.Fatalf("unexpected listing %+v", infos)
	}
}

func TestDeleteRemovesSidecar(t *testing.T) {
	root := t.TempDir()
	store, err := New(root)
	if err != nil {
		t.Fatalf("constructing store failed: %v", err)
	}
	ctx := context.Background()
	if _, err := store.Put(ctx, "k", strings.NewReader("a"), core.PutOptions{}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	ok, err := store.Delete(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("delete failed: ok=%v err=%v", ok, err)
	}
	if _, err := os.Stat(filepath.Join(root, "k.meta")); !os.IsNotExist(err) {
		t.Fatalf("sidecar not removed: %v", err)
	}
	ok, err = store.Delete(ctx, "k")
	if err != nil || ok {
		t.Fatalf("second delete must report false: ok=%v err=%v", ok, err)
	}
}

func TestPresignReturnsLocalURL(t *testing.T) {
	store := newTestStore(t)
	url, err := store.PresignURL(context.Background(), "stars/1/a.json", core.SignedURLOptions{})
	if err != nil {
		t.Fatalf("presign failed: %v", err)
	}
	if url != "http://local.blob/stars/1/a.json" {
		t.Fatalf("unexpected url %q", url)
	}
	if _, err := store.PresignURL(context.Background(), "k", core.SignedURLOptions{Method: "PUT"}); err == nil {
		t.Fatalf("PUT presign must be unsupported")
	}
}
