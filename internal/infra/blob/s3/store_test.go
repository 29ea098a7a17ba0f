package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	"starcore/internal/blob/core"
)

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatalf("expected bucket requirement error")
	}
}

func TestOpenFromEnvRequiresBucket(t *testing.T) {
	t.Setenv("STARCORE_BLOB_S3_BUCKET", "")
	if _, err := OpenFromEnv(context.Background()); err == nil {
		t.Fatalf("expected error when bucket unset")
	}
}

func TestMockPutGetRoundTrip(t *testing.T) {
	store := NewMockForTests()
	ctx := context.Background()

	info, err := store.Put(ctx, "stars/1/a.json", strings.NewReader(`{"id":1}`), core.PutOptions{ContentType: "application/json"})
	if err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if info.Key != "stars/1/a.json" {
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
	if got.ContentType != "application/json" {
		t.Fatalf("content type lost: %+v", got)
	}
}

func TestMockPutIsCreateOnly(t *testing.T) {
	store := NewMockForTests()
	ctx := context.Background()
	if _, err := store.Put(ctx, "k", strings.NewReader("a"), core.PutOptions{ContentType: "application/json"}); err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	if _, err := store.Put(ctx, "k", strings.NewReader("b"), core.PutOptions{ContentType: "application/json"}); err == nil {
		t.Fatalf("expected duplicate key rejection")
	}
}

func TestMockListOrdersKeys(t *testing.T) {
	store := NewMockForTests()
	ctx := context.Background()
	for _, key := range []string{"stars/1/b.json", "stars/1/a.json", "stars/2/a.json"} {
		if _, err := store.Put(ctx, key, strings.NewReader("x"), core.PutOptions{ContentType: "application/json"}); err != nil {
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

func TestMockDeleteThenHeadMisses(t *testing.T) {
	store := NewMockForTests()
	ctx := context.Background()
	if _, err := store.Put(ctx, "k", strings.NewReader("a"), core.PutOptions{ContentType: "application/json"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if _, err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Head(ctx, "k"); err == nil {
		t.Fatalf("expected head miss after delete")
	}
}

func TestMockPresignURL(t *testing.T) {
	store := NewMockForTests()
	url, err := store.PresignURL(context.Background(), "stars/1/a.json", core.SignedURLOptions{})
	if err != nil {
		t.Fatalf("presign failed: %v", err)
	}
	if !strings.Contains(url, "stars/1/a.json") {
		t.Fatalf("unexpected url %q", url)
	}
}
