// Package jsonfile provides a catalog adapter backed by a local JSON export.
//
// The file holds either an object with "menus" and "dishes" keys or a bare
// array of dishes. Without a "menus" key the menu list is derived from the
// dishes: distinct, non-empty and sorted.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
	"github.com/custodia-labs/menusearch/internal/logger"
)

// Ensure Catalog implements the interfaces.
var (
	_ driven.Catalog        = (*Catalog)(nil)
	_ driven.CatalogWatcher = (*Catalog)(nil)
)

// DefaultSettle is how long Watch waits after the last file event before
// reporting a change, so a burst of writes triggers one rebuild.
const DefaultSettle = 150 * time.Millisecond

var log = logger.For("jsonfile")

// Catalog reads a JSON catalog file. The file is re-read on every call.
type Catalog struct {
	path   string
	settle time.Duration
}

// New creates a catalog for the file at path.
func New(path string) *Catalog {
	return &Catalog{path: filepath.Clean(path), settle: DefaultSettle}
}

// Path returns the catalog file path.
func (c *Catalog) Path() string {
	return c.path
}

// document is the object form of the file.
type document struct {
	Menus  []string            `json:"menus"`
	Dishes []domain.SourceItem `json:"dishes"`
}

func (c *Catalog) load() (document, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return document{}, fmt.Errorf("read catalog: %w", err)
	}

	var doc document
	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte("[")) {
		err = json.Unmarshal(data, &doc.Dishes)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return document{}, fmt.Errorf("parse catalog %s: %w", c.path, err)
	}

	if doc.Menus == nil {
		doc.Menus = domain.MenusOf(doc.Dishes)
	}
	return doc, nil
}

// Menus returns the menu names.
func (c *Catalog) Menus(_ context.Context) ([]string, error) {
	doc, err := c.load()
	if err != nil {
		return nil, err
	}
	return doc.Menus, nil
}

// Dishes returns every item in the file.
func (c *Catalog) Dishes(_ context.Context) ([]domain.SourceItem, error) {
	doc, err := c.load()
	if err != nil {
		return nil, err
	}
	return doc.Dishes, nil
}

// Dish returns one item by id.
func (c *Catalog) Dish(_ context.Context, id string) (*domain.SourceItem, error) {
	doc, err := c.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Dishes {
		if doc.Dishes[i].ID == id {
			return &doc.Dishes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Watch calls onChange after the file is written, replaced or created.
// The parent directory is watched so atomic saves (write to temp, rename)
// are seen. Watch blocks until ctx is cancelled.
func (c *Catalog) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(c.path), err)
	}
	log.Info("watching %s", c.path)

	// fire is nil until an event arrives, then set to a fresh settle timer.
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != c.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("%s: %s", event.Op, event.Name)
			fire = time.After(c.settle)
		case <-fire:
			fire = nil
			if _, err := os.Stat(c.path); err != nil {
				log.Warn("catalog file gone: %v", err)
				continue
			}
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error: %v", err)
		}
	}
}
