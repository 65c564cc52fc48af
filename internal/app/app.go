package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/swipeshop/swipe-feed/internal/command"
	"github.com/swipeshop/swipe-feed/internal/datasources"
	"github.com/swipeshop/swipe-feed/internal/datasources/memory"
	"github.com/swipeshop/swipe-feed/internal/datasources/mysql"
	"github.com/swipeshop/swipe-feed/internal/datasources/redis"
	"github.com/swipeshop/swipe-feed/internal/datasources/restapi"
	"github.com/swipeshop/swipe-feed/internal/domain"
	"github.com/swipeshop/swipe-feed/internal/swipe"
	"github.com/swipeshop/swipe-feed/internal/transport/web/router"
	"github.com/swipeshop/swipe-feed/internal/transport/web/server"
	"github.com/swipeshop/swipe-feed/internal/transport/web/session"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	shop, err := SetupShopRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up shop repository: %w", err)
	}

	shop, err = setupCatalogCache(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("setting up catalog cache: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	loadFeedCmd := command.NewLoadFeed(shop, shop, DefaultLoadFeedConfig())
	relatedItemsCmd := command.NewRelatedItems(shop)

	// The store receives dispatch failures, and new sessions dispatch through the dispatcher.
	sessions := session.NewStore(SwipeConfigFromEnv(ctx), nil, MustGetEnvAsDuration(ctx, "SESSION_IDLE_TIMEOUT"))
	dispatcher := swipe.NewAsyncDispatcher(command.NewApplySwipeIntent(shop), sessions, DefaultDispatchBufferSize)
	sessions.Dispatcher = dispatcher

	httpRouter, err := router.MakeRouter(
		loadFeedCmd,
		relatedItemsCmd,
		sessions,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		dispatcher,
		sessions,
	}, nil
}

// SetupShopRepository connects the shop backend named by SHOP_DRIVER.
func SetupShopRepository(ctx context.Context) (datasources.ShopRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "SHOP_DRIVER"); driver {
	case "null":
		return datasources.NullShopRepository{}, nil
	case "memory":
		var catalog []domain.Item
		if path := GetEnvAsString("CATALOG_SEED_FILE"); path != "" {
			items, err := memory.LoadCatalogFile(path)
			if err != nil {
				return nil, err
			}
			catalog = items
		}
		return memory.NewStore(catalog), nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if err := mysql.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("migrating MySQL schema: %w", err)
		}
		return mysql.New(db), nil
	case "restapi":
		return restapi.NewClient(
			MustGetEnvAsString(ctx, "SHOP_API_URL"),
			GetEnvAsString("SHOP_API_TOKEN"),
			restapi.DefaultBreakerConfig("shop-api"),
			domain.LoggerFromContext(ctx),
		), nil
	default:
		return nil, fmt.Errorf("unknown shop driver [%s]", driver)
	}
}

func setupCatalogCache(ctx context.Context, shop datasources.ShopRepository) (datasources.ShopRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "CATALOG_CACHE_DRIVER"); driver {
	case "none":
		return shop, nil
	case "redis":
		client, err := redis.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_ADDR"))
		if err != nil {
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		return redis.NewCachedCatalog(shop, client, MustGetEnvAsDuration(ctx, "CATALOG_CACHE_TTL")), nil
	default:
		return nil, fmt.Errorf("unknown catalog cache driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "dev_header":
			domain.LoggerFromContext(ctx).WarnContext(ctx, "dev_header auth enabled, requests may claim any user")
			validators = append(validators, router.NewDevHeaderValidator())
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
