package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// Catalog stores catalog items in the dishes table.
// List and i18n fields are JSON columns shaped like the backend model.
type Catalog struct {
	store *Store
}

const dishColumns = `id, title, description, section, menu, status,
	ingredients, comments, tags, allergens, contains, features, reference_info, i18n`

// SaveDish stores or updates an item. An item without an id is rejected.
func (c *Catalog) SaveDish(ctx context.Context, item domain.SourceItem) error {
	return saveDish(ctx, c.store.db, item)
}

// Import stores items in one transaction, preserving their order for
// later listings. It returns the number of items written.
func (c *Catalog) Import(ctx context.Context, items []domain.SourceItem) (int, error) {
	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for i := range items {
		if err := saveDish(ctx, tx, items[i]); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	log.Info("imported %d dishes", len(items))
	return len(items), nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveDish(ctx context.Context, db execer, item domain.SourceItem) error {
	if item.ID == "" {
		return fmt.Errorf("%w: dish id is empty", domain.ErrInvalidInput)
	}

	status := item.Status
	if status == "" {
		status = domain.StatusActive
	}

	i18n := "{}"
	if len(item.English) > 0 {
		data, err := json.Marshal(map[string]domain.Translation{"en": item.English})
		if err != nil {
			return fmt.Errorf("marshalling i18n: %w", err)
		}
		i18n = string(data)
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO dishes (`+dishColumns+`, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			section = excluded.section,
			menu = excluded.menu,
			status = excluded.status,
			ingredients = excluded.ingredients,
			comments = excluded.comments,
			tags = excluded.tags,
			allergens = excluded.allergens,
			contains = excluded.contains,
			features = excluded.features,
			reference_info = excluded.reference_info,
			i18n = excluded.i18n,
			updated_at = excluded.updated_at
	`, item.ID, item.Title, item.Description, item.Section, item.Menu, string(status),
		listJSON(item.Ingredients), listJSON(item.Comments), listJSON(item.Tags), listJSON(item.Allergens),
		item.Contains, item.Features, item.ReferenceInfo, i18n, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("saving dish %s: %w", item.ID, err)
	}
	return nil
}

// DeleteDish removes an item. Deleting a missing item is not an error.
func (c *Catalog) DeleteDish(ctx context.Context, id string) error {
	if _, err := c.store.db.ExecContext(ctx, "DELETE FROM dishes WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting dish: %w", err)
	}
	return nil
}

// Menus returns the distinct non-empty menu names, sorted.
func (c *Catalog) Menus(ctx context.Context) ([]string, error) {
	rows, err := c.store.db.QueryContext(ctx, `
		SELECT DISTINCT menu FROM dishes
		WHERE TRIM(menu) != ''
		ORDER BY menu
	`)
	if err != nil {
		return nil, fmt.Errorf("querying menus: %w", err)
	}
	defer rows.Close()

	menus := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning menu: %w", err)
		}
		menus = append(menus, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menus: %w", err)
	}
	return menus, nil
}

// Dishes returns every item in insertion order.
func (c *Catalog) Dishes(ctx context.Context) ([]domain.SourceItem, error) {
	rows, err := c.store.db.QueryContext(ctx, "SELECT "+dishColumns+" FROM dishes ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying dishes: %w", err)
	}
	defer rows.Close()

	items := make([]domain.SourceItem, 0)
	for rows.Next() {
		item, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dishes: %w", err)
	}
	return items, nil
}

// Dish returns one item by id.
func (c *Catalog) Dish(ctx context.Context, id string) (*domain.SourceItem, error) {
	row := c.store.db.QueryRowContext(ctx, "SELECT "+dishColumns+" FROM dishes WHERE id = ?", id)
	item, err := scanDish(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return item, err
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDish(row scanner) (*domain.SourceItem, error) {
	var item domain.SourceItem
	var status, ingredients, comments, tags, allergens, i18n string
	if err := row.Scan(&item.ID, &item.Title, &item.Description, &item.Section, &item.Menu, &status,
		&ingredients, &comments, &tags, &allergens,
		&item.Contains, &item.Features, &item.ReferenceInfo, &i18n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning dish: %w", err)
	}
	item.Status = domain.ItemStatus(status)

	var err error
	if item.Ingredients, err = parseList(ingredients); err != nil {
		return nil, fmt.Errorf("dish %s ingredients: %w", item.ID, err)
	}
	if item.Comments, err = parseList(comments); err != nil {
		return nil, fmt.Errorf("dish %s comments: %w", item.ID, err)
	}
	if item.Tags, err = parseList(tags); err != nil {
		return nil, fmt.Errorf("dish %s tags: %w", item.ID, err)
	}
	if item.Allergens, err = parseList(allergens); err != nil {
		return nil, fmt.Errorf("dish %s allergens: %w", item.ID, err)
	}

	var translations map[string]domain.Translation
	if err := json.Unmarshal([]byte(i18n), &translations); err != nil {
		return nil, fmt.Errorf("dish %s i18n: %w", item.ID, err)
	}
	if en := translations["en"]; len(en) > 0 {
		item.English = en
	}
	return &item, nil
}

// listJSON encodes a list column; nil is stored as an empty array.
func listJSON(list []string) string {
	if len(list) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(list) //nolint:errcheck // []string always marshals
	return string(data)
}

// parseList decodes a list column; an empty array reads back as nil.
func parseList(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list, nil
}
