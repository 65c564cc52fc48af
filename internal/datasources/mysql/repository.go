package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/swipeshop/swipe-feed/internal/datasources"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

var _ datasources.ShopRepository = (*Repository)(nil)

var catalogColumns = []string{
	"c.id", "c.title", "c.brand", "c.image", "c.category", "c.price", "c.tags", "c.variants",
}

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// FetchCatalog returns every catalog item in display order.
func (r *Repository) FetchCatalog(ctx context.Context) ([]domain.Item, error) {
	sb := sqlbuilder.Select(catalogColumns...)
	sb.From("catalog_items AS c")
	sb.OrderBy("c.position", "c.id")

	query, args := sb.Build()
	items, err := r.queryItems(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	return items, nil
}

// FetchPastPositiveInteractions returns the catalog items the user liked, oldest like first.
func (r *Repository) FetchPastPositiveInteractions(ctx context.Context, userID string) ([]domain.Item, error) {
	sb := sqlbuilder.Select(catalogColumns...)
	sb.From("item_likes AS l")
	sb.Join("catalog_items AS c", "c.id = l.item_id")
	sb.Where(sb.Equal("l.user_id", userID))
	sb.OrderBy("l.id")

	query, args := sb.Build()
	items, err := r.queryItems(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching liked items: %w", err)
	}
	return items, nil
}

func (r *Repository) queryItems(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running items query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.Item{}
	for rows.Next() {
		var (
			item     domain.Item
			tags     string
			variants string
		)
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Brand, &item.Image, &item.Category, &item.Price, &tags, &variants,
		); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		if err := unmarshalColumn(tags, &item.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags of item %s: %w", item.ID, err)
		}
		if err := unmarshalColumn(variants, &item.Variants); err != nil {
			return nil, fmt.Errorf("decoding variants of item %s: %w", item.ID, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return items, nil
}

// LikeItem records a like; a repeated like is ignored.
func (r *Repository) LikeItem(ctx context.Context, userID, itemID string) error {
	ib := sqlbuilder.InsertIgnoreInto("item_likes")
	ib.Cols("user_id", "item_id", "date_liked")
	ib.Values(userID, itemID, time.Now().UTC())

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting like: %w", err)
	}
	return nil
}

func (r *Repository) UnlikeItem(ctx context.Context, userID, itemID string) error {
	delb := sqlbuilder.DeleteFrom("item_likes")
	delb.Where(
		delb.Equal("user_id", userID),
		delb.Equal("item_id", itemID),
	)

	query, args := delb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting like: %w", err)
	}
	return nil
}

// AddToCart adds the line to the user's cart, increasing the quantity of an existing line
// for the same item and variant.
func (r *Repository) AddToCart(ctx context.Context, userID string, line domain.CartLine) error {
	variant, err := json.Marshal(line.Variant)
	if err != nil {
		return fmt.Errorf("encoding cart variant: %w", err)
	}

	ib := sqlbuilder.InsertInto("cart_lines")
	ib.Cols("user_id", "item_id", "variant_key", "variant", "quantity", "date_added")
	ib.Values(userID, line.ItemID, line.Variant.Key(), string(variant), line.Quantity, time.Now().UTC())
	ib.SQL("ON DUPLICATE KEY UPDATE quantity = quantity + " + ib.Var(line.Quantity))

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting cart line: %w", err)
	}
	return nil
}

// ListCartLines returns the user's cart in the order lines were first added.
func (r *Repository) ListCartLines(ctx context.Context, userID string) ([]domain.CartLine, error) {
	sb := sqlbuilder.Select("item_id", "variant", "quantity")
	sb.From("cart_lines")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running cart query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	lines := []domain.CartLine{}
	for rows.Next() {
		var (
			line    domain.CartLine
			variant string
		)
		if err := rows.Scan(&line.ItemID, &variant, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scanning cart row: %w", err)
		}
		if err := unmarshalColumn(variant, &line.Variant); err != nil {
			return nil, fmt.Errorf("decoding cart variant: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cart rows: %w", err)
	}
	return lines, nil
}

// UpsertCatalogItems inserts or refreshes catalog items. Their slice order becomes the display order.
func (r *Repository) UpsertCatalogItems(ctx context.Context, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now().UTC()
	ib := sqlbuilder.InsertInto("catalog_items")
	ib.Cols("id", "position", "title", "brand", "image", "category", "price", "tags", "variants", "date_created")
	for i, item := range items {
		tags, err := marshalColumn(item.Tags)
		if err != nil {
			return fmt.Errorf("encoding tags of item %s: %w", item.ID, err)
		}
		variants, err := marshalColumn(item.Variants)
		if err != nil {
			return fmt.Errorf("encoding variants of item %s: %w", item.ID, err)
		}
		ib.Values(item.ID, i, item.Title, item.Brand, item.Image, item.Category, item.Price, tags, variants, now)
	}
	ib.SQL("ON DUPLICATE KEY UPDATE position = VALUES(position), title = VALUES(title), " +
		"brand = VALUES(brand), image = VALUES(image), category = VALUES(category), " +
		"price = VALUES(price), tags = VALUES(tags), variants = VALUES(variants)")

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting catalog items: %w", err)
	}
	return nil
}

func marshalColumn(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalColumn(data string, v any) error {
	if data == "" || data == "null" {
		return nil
	}
	return json.Unmarshal([]byte(data), v)
}
