// Command rank-catalog prints the swipe feed a user would get, or seeds the MySQL catalog from a file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/swipeshop/swipe-feed/internal/app"
	"github.com/swipeshop/swipe-feed/internal/command"
	"github.com/swipeshop/swipe-feed/internal/datasources/memory"
	"github.com/swipeshop/swipe-feed/internal/datasources/mysql"
	"github.com/swipeshop/swipe-feed/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	userID := flag.String("user", "", "rank for this user's likes; empty ranks without a signal")
	limit := flag.Int("limit", 20, "number of items to print")
	relatedTo := flag.String("related", "", "print the items related to this item instead of a feed")
	seedFile := flag.String("seed", "", "upsert the items in this JSON file into the MySQL catalog and exit")
	flag.Parse()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	var err error
	switch {
	case *seedFile != "":
		err = seed(ctx, *seedFile)
	case *relatedTo != "":
		err = printRelated(ctx, *relatedTo, *limit)
	default:
		err = printFeed(ctx, *userID, *limit)
	}
	if err != nil {
		logger.ErrorContext(ctx, "rank-catalog failed", "error", err)
		os.Exit(1)
	}
}

func printFeed(ctx context.Context, userID string, limit int) error {
	shop, err := app.SetupShopRepository(ctx)
	if err != nil {
		return fmt.Errorf("setting up shop repository: %w", err)
	}

	items, err := command.NewLoadFeed(shop, shop, app.DefaultLoadFeedConfig()).
		Execute(ctx, command.LoadFeedRequest{UserID: userID, Limit: limit})
	if err != nil {
		return fmt.Errorf("loading feed: %w", err)
	}
	return printItems(items)
}

func printRelated(ctx context.Context, itemID string, limit int) error {
	shop, err := app.SetupShopRepository(ctx)
	if err != nil {
		return fmt.Errorf("setting up shop repository: %w", err)
	}

	items, err := command.NewRelatedItems(shop).
		Execute(ctx, command.RelatedItemsRequest{ItemID: itemID, Limit: limit})
	if err != nil {
		return fmt.Errorf("listing related items: %w", err)
	}
	return printItems(items)
}

func seed(ctx context.Context, path string) error {
	items, err := memory.LoadCatalogFile(path)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := domain.Validate(item); err != nil {
			return fmt.Errorf("invalid item in seed file: %w", err)
		}
	}

	db, err := mysql.Connect(ctx, app.MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return fmt.Errorf("connecting to MySQL: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := mysql.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrating MySQL schema: %w", err)
	}
	if err := mysql.New(db).UpsertCatalogItems(ctx, items); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "catalog seeded", "items", len(items))
	return nil
}

func printItems(items []domain.Item) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("writing items: %w", err)
	}
	return nil
}
