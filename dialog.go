package querydialog

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-querydialog/pkg/catalog"
	"github.com/goliatone/go-querydialog/pkg/hierarchy"
	dialog "github.com/goliatone/go-querydialog/pkg/querydialog"
)

// QueryCreationRequest aliases the create event payload for callers that only
// import the top-level module.
type QueryCreationRequest = dialog.QueryCreationRequest

// Option aliases the controller option type.
type Option = dialog.Option

// Source names the documents a dialog is opened from. Both documents are read
// from FS unless CatalogFS is set.
type Source struct {
	FS            fs.FS
	Structure     string
	Catalog       string
	CatalogFormat catalog.Format
	CatalogFS     fs.FS
}

func (s Source) catalogFS() fs.FS {
	if s.CatalogFS != nil {
		return s.CatalogFS
	}
	return s.FS
}

// Dialog bundles an open controller with the documents it was built from.
type Dialog struct {
	*dialog.Controller
	Structure *hierarchy.Tree
	Catalog   *catalog.Catalog
}

// Open loads the structure and catalog documents from src and returns a
// controller in the ready state.
func Open(ctx context.Context, src Source, options ...Option) (*Dialog, error) {
	if src.FS == nil {
		return nil, fmt.Errorf("querydialog: source filesystem is nil")
	}
	tree, err := hierarchy.LoadFile(src.FS, src.Structure)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.LoadFile(ctx, src.catalogFS(), src.Catalog, src.CatalogFormat)
	if err != nil {
		return nil, err
	}
	ctrl, err := dialog.New(tree, cat, options...)
	if err != nil {
		return nil, err
	}
	return &Dialog{Controller: ctrl, Structure: tree, Catalog: cat}, nil
}

// Create opens a dialog, applies scopeID (when non-empty) and category, and
// submits in one step.
func Create(ctx context.Context, src Source, scopeID, category string, options ...Option) (QueryCreationRequest, error) {
	d, err := Open(ctx, src, options...)
	if err != nil {
		return QueryCreationRequest{}, err
	}
	if scopeID != "" {
		d.SetScope(scopeID)
	}
	d.SetCategory(category)
	return d.Submit()
}

// WithLogger re-exports the controller logger option.
var WithLogger = dialog.WithLogger
