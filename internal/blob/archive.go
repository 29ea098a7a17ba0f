package blob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"starcore/pkg/domain"
)

// Archive writes timestamped star snapshots to a blob store and reads them
// back. Keys follow `stars/<id>/<timestamp>.json`, so listing a star's prefix
// returns its history in chronological order.
type Archive struct {
	store Store
	now   func() time.Time
}

// ArchiveOption configures an Archive.
type ArchiveOption func(*Archive)

// WithArchiveClock overrides the wall clock, primarily for tests.
func WithArchiveClock(now func() time.Time) ArchiveOption {
	return func(a *Archive) {
		if now != nil {
			a.now = now
		}
	}
}

// NewArchive constructs an Archive over the given store.
func NewArchive(store Store, opts ...ArchiveOption) *Archive {
	a := &Archive{store: store, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

const archiveTimeLayout = "20060102T150405.000Z"

func archivePrefix(starID int64) string {
	return fmt.Sprintf("stars/%d/", starID)
}

// Save serializes the star and stores it under a fresh timestamped key.
func (a *Archive) Save(ctx context.Context, star domain.Star) (Info, error) {
	payload, err := json.MarshalIndent(star, "", "  ")
	if err != nil {
		return Info{}, err
	}
	key := archivePrefix(star.ID) + a.now().UTC().Format(archiveTimeLayout) + ".json"
	return a.store.Put(ctx, key, bytes.NewReader(payload), PutOptions{
		ContentType: "application/json",
		Metadata: map[string]string{
			"star_id":   strconv.FormatInt(star.ID, 10),
			"star_name": star.Name,
		},
	})
}

// List returns the archived snapshots of one star, oldest first.
func (a *Archive) List(ctx context.Context, starID int64) ([]Info, error) {
	return a.store.List(ctx, archivePrefix(starID))
}

// Load reads one archived snapshot back into a star.
func (a *Archive) Load(ctx context.Context, key string) (domain.Star, error) {
	_, rc, err := a.store.Get(ctx, key)
	if err != nil {
		return domain.Star{}, err
	}
	defer func() { _ = rc.Close() }()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return domain.Star{}, err
	}
	var star domain.Star
	if err := json.Unmarshal(raw, &star); err != nil {
		return domain.Star{}, fmt.Errorf("decoding archived star %s: %w", key, err)
	}
	return star, nil
}

// Latest loads the most recent snapshot of a star. Returns false when the star
// has no archives.
func (a *Archive) Latest(ctx context.Context, starID int64) (domain.Star, bool, error) {
	infos, err := a.List(ctx, starID)
	if err != nil {
		return domain.Star{}, false, err
	}
	if len(infos) == 0 {
		return domain.Star{}, false, nil
	}
	star, err := a.Load(ctx, infos[len(infos)-1].Key)
	if err != nil {
		return domain.Star{}, false, err
	}
	return star, true, nil
}
