package memory

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"starcore/internal/blob/core"
)

func TestPutGetRoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()

	info, err := store.Put(ctx, "stars/1/a.json", strings.NewReader(`{"id":1}`), core.PutOptions{
		ContentType: "application/json",
		Metadata:    map[string]string{"star_id": "1"},
	})
	if err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if info.Size != 8 || info.ContentType != "application/json" {
		t.Fatalf("unexpected info %+v", info)
	}

	got, rc, err := store.Get(ctx, "stars/1/a.json")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != `{"id":1}` {
		t.Fatalf("unexpected body %q", body)
	}
	if got.Metadata["star_id"] != "1" {
		t.Fatalf("metadata lost: %+v", got.Metadata)
	}
}

func TestPutIsCreateOnly(t *testing.T) {
	store := New()
	ctx := context.Background()
	if _, err := store.Put(ctx, "k", strings.NewReader("a"), core.PutOptions{}); err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	if _, err := store.Put(ctx, "k", strings.NewReader("b"), core.PutOptions{}); err == nil {
		t.Fatalf("expected duplicate key rejection")
	}
}

func TestListFiltersByPrefix(t *testing.T) {
	store := New()
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
	if len(infos) != 2 || infos[0].Key != "stars/1/a.json" || infos[1].Key != "stars/1/b.json" {
		t.Fatalf("unexpected listing %+v", infos)
	}
}

func TestDeleteReportsExistence(t *testing.T) {
	store := New()
	ctx := context.Background()
	if _, err := store.Put(ctx, "k", strings.NewReader("a"), core.PutOptions{}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	ok, err := store.Delete(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected delete to report existing blob: ok=%v err=%v", ok, err)
	}
	ok, err = store.Delete(ctx, "k")
	if err != nil || ok {
		t.Fatalf("expected delete of missing blob to report false: ok=%v err=%v", ok, err)
	}
}

func TestPresignUnsupported(t *testing.T) {
	store := New()
	if _, err := store.PresignURL(context.Background(), "k", core.SignedURLOptions{}); !errors.Is(err, core.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
