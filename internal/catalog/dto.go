package catalog

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/match-league/internal/engine"
)

// Response is the JSON body served and consumed for a catalog batch.
type Response struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message,omitempty"`
	BatchID   int64   `json:"loteId,omitempty"`
	BatchName string  `json:"loteName,omitempty"`
	Images    []Image `json:"images"`
}

// Image is one catalog entry on the wire.
type Image struct {
	ID    int    `json:"id"`
	Order int    `json:"orden"`
	URL   string `json:"url"`
	Name  string `json:"nombre"`
	Glyph string `json:"glyph,omitempty"`
}

// NewResponse encodes a catalog. Order follows catalog position, from 1.
func NewResponse(c engine.Catalog) Response {
	images := make([]Image, len(c.Descriptors))
	for i, d := range c.Descriptors {
		images[i] = Image{
			ID:    int(d.ID),
			Order: i + 1,
			URL:   d.URL,
			Name:  d.Name,
			Glyph: d.Glyph,
		}
	}
	return Response{
		Success:   true,
		BatchID:   c.BatchID,
		BatchName: c.BatchName,
		Images:    images,
	}
}

// ErrorResponse encodes a failed lookup.
func ErrorResponse(err error) Response {
	return Response{Message: err.Error(), Images: []Image{}}
}

// Catalog decodes the response, ordering images by their order field.
func (r Response) Catalog() (engine.Catalog, error) {
	if !r.Success {
		if r.Message == "" {
			return engine.Catalog{}, ErrNotFound
		}
		return engine.Catalog{}, fmt.Errorf("%w: %s", ErrNotFound, r.Message)
	}
	if len(r.Images) == 0 {
		return engine.Catalog{}, ErrEmptyCatalog
	}

	images := make([]Image, len(r.Images))
	copy(images, r.Images)
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
	return engine.Catalog{Descriptors: ds, BatchID: r.BatchID, BatchName: r.BatchName}, nil
}
