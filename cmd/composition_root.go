package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	httpin "pizzaria/internal/adapters/in/http"
	"pizzaria/internal/adapters/out/eventlog"
	"pizzaria/internal/adapters/out/googlemaps"
	"pizzaria/internal/adapters/out/postgres"
	"pizzaria/internal/adapters/out/postgres/quoterepo"
	"pizzaria/internal/adapters/out/postgres/settingsrepo"
	"pizzaria/internal/core/application/usecases/commands"
	"pizzaria/internal/core/application/usecases/queries"
	"pizzaria/internal/core/domain/services"
	"pizzaria/internal/core/ports"
	"pizzaria/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	settings   *settingsrepo.GormSettingsStore
	quoteCache *quoterepo.GormQuoteCache
	geocoder   *googlemaps.Client
	eventLog   *eventlog.FileLog
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		settings:   settingsrepo.NewGormSettingsStore(gormDB),
		quoteCache: quoterepo.NewGormQuoteCache(gormDB),
		geocoder:   googlemaps.NewClient(configs.MapsBaseURL),
		eventLog:   eventlog.NewFileLog(configs.EventLogPath, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.settings, c.eventLog, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.eventLog, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.eventLog, c.logger)
}

func (c *CompositionRoot) CreateReplaceOrderItemsCommandHandler() commands.ReplaceOrderItemsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceOrderItemsCommandHandler(f, c.eventLog, c.logger)
}

func (c *CompositionRoot) CreateSetOrdersPauseCommandHandler() commands.SetOrdersPauseCommandHandler {
	return commands.NewSetOrdersPauseCommandHandler(c.settings, c.eventLog, c.logger)
}

func (c *CompositionRoot) CreateQuoteDeliveryCommandHandler() commands.QuoteDeliveryCommandHandler {
	quoter := services.NewDeliveryQuoter(c.settings, c.quoteCache, c.geocoder, c.logger)
	return commands.NewQuoteDeliveryCommandHandler(quoter)
}

func (c *CompositionRoot) CreateGetBoardOrdersQueryHandler() queries.GetBoardOrdersQueryHandler {
	return queries.NewGetBoardOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateReplaceOrderItemsCommandHandler(),
		c.CreateSetOrdersPauseCommandHandler(),
		c.CreateQuoteDeliveryCommandHandler(),
		c.CreateGetBoardOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.settings,
		c.eventLog,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.logger)
}

// SeedPricingConfig writes the delivery pricing row from the environment
// configuration. Skipped when no geocoding key is configured, in which case
// quoting reports itself as misconfigured until staff set the row directly.
func (c *CompositionRoot) SeedPricingConfig(ctx context.Context, configs Config) error {
	if configs.GeocodingAPIKey == "" {
		return nil
	}

	originLat, err := strconv.ParseFloat(configs.DeliveryOriginLat, 64)
	if err != nil {
		return fmt.Errorf("invalid DELIVERY_ORIGIN_LAT: %w", err)
	}
	originLng, err := strconv.ParseFloat(configs.DeliveryOriginLng, 64)
	if err != nil {
		return fmt.Errorf("invalid DELIVERY_ORIGIN_LNG: %w", err)
	}
	pricePerKm, err := decimal.NewFromString(configs.DeliveryPricePerKm)
	if err != nil {
		return fmt.Errorf("invalid DELIVERY_PRICE_PER_KM: %w", err)
	}
	minFee, err := decimal.NewFromString(configs.DeliveryMinFee)
	if err != nil {
		return fmt.Errorf("invalid DELIVERY_MIN_FEE: %w", err)
	}

	return c.settings.SetPricingConfig(ctx, ports.PricingConfig{
		OriginLat:       originLat,
		OriginLng:       originLng,
		PricePerKm:      pricePerKm,
		MinDeliveryFee:  minFee,
		GeocodingAPIKey: configs.GeocodingAPIKey,
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
