package catalog

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/match-league/internal/engine"
)

func init() {
	Register("file", func(u *url.URL, _ Options) (Provider, error) {
		path := u.Path
		if path == "" {
			path = u.Opaque
		}
		if u.Host != "" {
			path = u.Host + path
		}
		return &File{Path: path}, nil
	})
}

// FileCatalog is the YAML catalog file format. Default names the batch
// served for batch 0; when unset the first batch is used.
type FileCatalog struct {
	Default int64       `yaml:"default"`
	Batches []FileBatch `yaml:"batches"`
}

// FileBatch is one batch of images in a catalog file.
type FileBatch struct {
	ID     int64       `yaml:"id"`
	Name   string      `yaml:"name"`
	Images []FileImage `yaml:"images"`
}

// FileImage is one image entry. Images are served sorted by Order.
type FileImage struct {
	ID    int    `yaml:"id"`
	Order int    `yaml:"order"`
	URL   string `yaml:"url"`
	Glyph string `yaml:"glyph"`
	Name  string `yaml:"name"`
}

// File reads catalogs from a YAML file on every fetch.
type File struct {
	Path string
}

// FetchCatalog implements Provider.
func (f *File) FetchCatalog(ctx context.Context, batchID int64) (engine.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return engine.Catalog{}, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return engine.Catalog{}, fmt.Errorf("catalog: failed to read %s: %w", f.Path, err)
	}
	var fc FileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return engine.Catalog{}, fmt.Errorf("catalog: failed to parse %s: %w", f.Path, err)
	}
	return fc.Batch(batchID)
}

// Batch converts the batch with the given id, or the default batch for 0.
func (fc FileCatalog) Batch(batchID int64) (engine.Catalog, error) {
	if len(fc.Batches) == 0 {
		return engine.Catalog{}, ErrEmptyCatalog
	}
	if batchID == 0 {
		batchID = fc.Default
	}
	if batchID == 0 {
		batchID = fc.Batches[0].ID
	}
	for _, b := range fc.Batches {
		if b.ID == batchID {
			return b.catalog(), nil
		}
	}
	return engine.Catalog{}, fmt.Errorf("%w: %d", ErrNotFound, batchID)
}

func (b FileBatch) catalog() engine.Catalog {
	images := make([]FileImage, len(b.Images))
	copy(images, b.Images)
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].Order < images[j].Order
	})

	ds := make([]engine.Descriptor, len(images))
	for i, img := range images {
		ds[i] = engine.Descriptor{
			ID:    engine.ImageID(img.ID),
			URL:   img.URL,
			Glyph: img.Glyph,
			Name:  img.Name,
		}
	}
	return engine.Catalog{Descriptors: ds, BatchID: b.ID, BatchName: b.Name}
}
