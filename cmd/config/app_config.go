package config

import (
	"Groeneweide-Backend/internal/api/handlers"
	"Groeneweide-Backend/internal/api/routes"
	"Groeneweide-Backend/internal/middleware"
	"Groeneweide-Backend/internal/utils"
	"Groeneweide-Backend/internal/utils/storage"
	"Groeneweide-Backend/pkg/assets"
	"Groeneweide-Backend/pkg/booking"
	"Groeneweide-Backend/pkg/category"
	"Groeneweide-Backend/pkg/events"
	"Groeneweide-Backend/pkg/jwt"
	"Groeneweide-Backend/pkg/locker"
	"Groeneweide-Backend/pkg/order"
	"Groeneweide-Backend/pkg/orderedproduct"
	"Groeneweide-Backend/pkg/product"
	"Groeneweide-Backend/pkg/recipe"
	"Groeneweide-Backend/pkg/store"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, cfg *utils.Config, log *zap.Logger, publisher events.Publisher, s3 storage.AwsS3) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:           cfg.App.Name,
		EnablePrintRoutes: cfg.App.Env == "development",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	app.Use(recover.New())

	// setting up access log and limiter
	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), os.ModePerm); err != nil {
			return nil, fmt.Errorf("error creating logs directory: %w", err)
		}
		file, err := os.OpenFile(cfg.Log.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   cfg.Database.TimeZone,
			Output:     file,
		}))
	}

	if cfg.Limiter.Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.Limiter.Max,
			Expiration: cfg.Limiter.Expiration,
		}))
	}

	gateway := store.NewGateway(db)

	// Repository
	categoryRepository := category.NewCategoryRepository(db)
	productRepository := product.NewProductRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	bookingRepository := booking.NewBookingRepository(db)
	lockerRepository := locker.NewLockerRepository(db)
	orderRepository := order.NewOrderRepository(db)
	orderedProductRepository := orderedproduct.NewOrderedProductRepository(db)
	assetRepository := assets.NewAssetRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer)
	categoryService := category.NewCategoryService(gateway, categoryRepository, log)
	productService := product.NewProductService(gateway, productRepository, log)
	recipeService := recipe.NewRecipeService(gateway, recipeRepository, log)
	bookingService := booking.NewBookingService(bookingRepository, log)
	lockerService := locker.NewLockerService(gateway, lockerRepository, log)
	orderService := order.NewOrderService(gateway, orderRepository, publisher, log)
	orderedProductService := orderedproduct.NewOrderedProductService(gateway, orderedProductRepository, log)
	assetService := assets.NewAssetService(gateway, assetRepository, s3, log)

	// Handler
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	bookingHandler := handlers.NewBookingHandler(bookingService, lockerService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	orderedProductHandler := handlers.NewOrderedProductHandler(orderedProductService, validator)
	assetHandler := handlers.NewAssetHandler(assetService)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		CategoryHandler:       categoryHandler,
		ProductHandler:        productHandler,
		RecipeHandler:         recipeHandler,
		BookingHandler:        bookingHandler,
		OrderHandler:          orderHandler,
		OrderedProductHandler: orderedProductHandler,
		AssetHandler:          assetHandler,
		Middleware:            middlewares,
		JWTService:            jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// NewPublisher connects to Kafka when it is enabled and otherwise returns a
// publisher that drops events.
func NewPublisher(cfg *utils.Config, log *zap.Logger) (events.Publisher, error) {
	if !cfg.Kafka.Enabled {
		return events.NopPublisher{}, nil
	}
	return events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
}

// NewStorage connects to the asset bucket, or returns nil when no bucket is
// configured.
func NewStorage(ctx context.Context, cfg *utils.Config) (storage.AwsS3, error) {
	if cfg.Assets.Bucket == "" {
		return nil, nil
	}
	return storage.NewAwsS3(ctx, storage.Config{
		Bucket:          cfg.Assets.Bucket,
		Region:          cfg.Assets.Region,
		Endpoint:        cfg.Assets.Endpoint,
		PublicURL:       cfg.Assets.PublicURL,
		PathStyle:       cfg.Assets.PathStyle,
		AccessKeyID:     cfg.Assets.AccessKeyID,
		SecretAccessKey: cfg.Assets.SecretAccessKey,
	})
}
