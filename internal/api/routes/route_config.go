package routes

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/internal/api/handlers"
	"Groeneweide-Backend/internal/middleware"
	"Groeneweide-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App                   *fiber.App
	CategoryHandler       handlers.CategoryHandler
	ProductHandler        handlers.ProductHandler
	RecipeHandler         handlers.RecipeHandler
	BookingHandler        handlers.BookingHandler
	OrderHandler          handlers.OrderHandler
	OrderedProductHandler handlers.OrderedProductHandler
	AssetHandler          handlers.AssetHandler
	Middleware            middleware.Middleware
	JWTService            jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.GuestRoute()
	c.Categories()
	c.Products()
	c.Recipes()
	c.RecipeParts()
	c.Bookings()
	c.Lockers()
	c.Orders()
	c.OrderedProducts()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessageSuccessPing})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/categories")
	{
		categories.Post("", c.auth(), c.CategoryHandler.CreateCategory)
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Get("/:id", c.CategoryHandler.GetCategoryProducts)
		categories.Put("/:id", c.auth(), c.CategoryHandler.RenameCategory)
		categories.Patch("/:id", c.auth(), c.CategoryHandler.RenameCategory)
		categories.Delete("/:id", c.auth(), c.CategoryHandler.DeleteCategory)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/products")
	{
		products.Post("", c.auth(), c.ProductHandler.CreateProduct)
		products.Get("", c.ProductHandler.GetProducts)
		products.Get("/:id", c.ProductHandler.GetProduct)
		products.Patch("/:id", c.auth(), c.ProductHandler.PatchProduct)
		products.Delete("/:id", c.auth(), c.ProductHandler.DeleteProduct)
		products.Post("/:id/asset", c.auth(), c.AssetHandler.UploadProductAsset)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Post("", c.auth(), c.RecipeHandler.CreateRecipe)
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipe)
		recipes.Patch("/:id", c.auth(), c.RecipeHandler.PatchRecipe)
		recipes.Delete("/:id", c.auth(), c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/asset", c.auth(), c.AssetHandler.UploadRecipeAsset)
	}

	// legacy paths
	recepten := c.App.Group("/api/recepten")
	recepten.Post("", c.auth(), c.RecipeHandler.CreateRecipe)
	recepten.Get("", c.RecipeHandler.GetRecipes)
}

func (c *Config) RecipeParts() {
	parts := c.App.Group("/api/recipe_parts")
	{
		parts.Post("", c.auth(), c.RecipeHandler.CreateRecipePart)
		parts.Get("/:recipeId", c.RecipeHandler.GetRecipeParts)
		parts.Patch("/:recipeId/:productId", c.auth(), c.RecipeHandler.PatchRecipePart)
		parts.Delete("/:recipeId/:productId", c.auth(), c.RecipeHandler.DeleteRecipePart)
	}
}

func (c *Config) Bookings() {
	bookings := c.App.Group("/api/bookings")
	{
		bookings.Post("", c.auth(), c.BookingHandler.CreateBooking)
		bookings.Get("", c.BookingHandler.GetBookings)
		bookings.Get("/:id", c.BookingHandler.GetBooking)
	}
}

func (c *Config) Lockers() {
	lockers := c.App.Group("/api/lockers")
	{
		lockers.Post("", c.auth(), c.BookingHandler.CreateLocker)
		lockers.Get("", c.BookingHandler.GetLockers)
		lockers.Put("/:id", c.auth(), c.BookingHandler.AssignLocker)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/orders")
	{
		orders.Post("", c.auth(), c.OrderHandler.CreateOrder)
		orders.Get("", c.OrderHandler.GetOrders)
		orders.Get("/:id", c.OrderHandler.GetOrder)
		orders.Put("/:id", c.auth(), c.OrderHandler.ReplaceOrder)
		orders.Patch("/:id", c.auth(), c.OrderHandler.PatchOrder)
		orders.Delete("/:id", c.auth(), c.OrderHandler.DeleteOrder)
	}
}

func (c *Config) OrderedProducts() {
	lines := c.App.Group("/api/ordered_products")
	{
		lines.Post("", c.auth(), c.OrderedProductHandler.CreateOrderedProduct)
		lines.Get("", c.OrderedProductHandler.GetOrderedProducts)
		lines.Get("/:orderId", c.OrderedProductHandler.GetOrderedProductsByOrder)
		lines.Patch("/:orderId/:productId", c.auth(), c.OrderedProductHandler.PatchOrderedProduct)
		lines.Delete("/:orderId/:productId", c.auth(), c.OrderedProductHandler.DeleteOrderedProduct)
	}

	// legacy paths, kept with their original spelling
	legacy := c.App.Group("/api/orderd_products")
	legacy.Post("", c.auth(), c.OrderedProductHandler.CreateOrderedProduct)
	legacy.Get("", c.OrderedProductHandler.GetOrderedProducts)
	legacy.Get("/:orderId", c.OrderedProductHandler.GetOrderedProductsByOrder)
}
