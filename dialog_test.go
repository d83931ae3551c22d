package querydialog_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	querydialog "github.com/goliatone/go-querydialog"
	"github.com/goliatone/go-querydialog/pkg/catalog"
	dialog "github.com/goliatone/go-querydialog/pkg/querydialog"
)

const structureDoc = `{"id":"b1","name":"Main","virtualhostnodes":[{"id":"n1","name":"default","virtualhosts":[{"id":"v1","name":"default"}]}]}`

const catalogDoc = `
metadata:
  Queue:
    standard: {}
`

func source() querydialog.Source {
	return querydialog.Source{
		FS: fstest.MapFS{
			"structure.json": {Data: []byte(structureDoc)},
			"metadata.yaml":  {Data: []byte(catalogDoc)},
		},
		Structure:     "structure.json",
		Catalog:       "metadata.yaml",
		CatalogFormat: catalog.FormatMetadata,
	}
}

func TestOpen(t *testing.T) {
	d, err := querydialog.Open(context.Background(), source())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if d.State() != dialog.StateReady {
		t.Fatalf("expected ready, got %v", d.State())
	}
	if got := len(d.Entries()); got != 2 {
		t.Fatalf("expected 2 entries, got %d", got)
	}
	if d.Catalog.Len() != 1 || d.Structure.Len() != 3 {
		t.Fatalf("unexpected documents: catalog=%d structure=%d", d.Catalog.Len(), d.Structure.Len())
	}
}

func TestOpen_SeparateCatalogFS(t *testing.T) {
	src := querydialog.Source{
		FS:            fstest.MapFS{"structure.json": {Data: []byte(structureDoc)}},
		Structure:     "structure.json",
		CatalogFS:     fstest.MapFS{"meta/metadata.yaml": {Data: []byte(catalogDoc)}},
		Catalog:       "meta/metadata.yaml",
		CatalogFormat: catalog.FormatMetadata,
	}
	d, err := querydialog.Open(context.Background(), src)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := d.Catalog.Metadata("Queue"); !ok {
		t.Fatalf("expected catalog loaded from CatalogFS")
	}

	src.CatalogFS = nil
	if _, err := querydialog.Open(context.Background(), src); err == nil {
		t.Fatal("expected catalog lookup in FS to fail without CatalogFS")
	}
}

func TestOpen_MissingDocument(t *testing.T) {
	src := source()
	src.Structure = "missing.json"
	if _, err := querydialog.Open(context.Background(), src); err == nil {
		t.Fatal("expected error for missing structure")
	}
	if _, err := querydialog.Open(context.Background(), querydialog.Source{}); err == nil {
		t.Fatal("expected error for nil filesystem")
	}
}

func TestCreate(t *testing.T) {
	req, err := querydialog.Create(context.Background(), source(), "v1", "queue")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if req.Preference.Value.Category != "Queue" {
		t.Fatalf("expected Queue, got %q", req.Preference.Value.Category)
	}
	if req.ParentObject == nil || req.ParentObject.ID != "v1" {
		t.Fatalf("expected parent v1, got %+v", req.ParentObject)
	}

	_, err = querydialog.Create(context.Background(), source(), "", "exchange")
	if !errors.Is(err, dialog.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
