package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"store-backend/internal/cache"
	"store-backend/internal/catalog"
	"store-backend/internal/config"
	"store-backend/internal/favorites"
	"store-backend/internal/handlers"
	"store-backend/internal/middleware"
	"store-backend/internal/store"
)

// RegisterRoutes wires the store adapters, query engines and handlers
// onto the router.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, log *logrus.Logger) {
	products := store.NewMongoProductStore(db.Collection("products"))
	categories := store.NewMongoCategoryStore(db.Collection("categories"))
	users := store.NewMongoUserStore(db.Collection("users"))

	catalogSvc := catalog.NewService(products, categories, cfg.ProductPageLimit)
	favoritesSvc := favorites.NewService(users, products, cfg.FavoritesPageLimit)
	queryCache := cache.New(cfg.CacheTTL)

	ph := handlers.NewProductHandler(catalogSvc, queryCache, log)
	fh := handlers.NewFavoritesHandler(favoritesSvc, log)

	p := router.Group("/products")
	{
		p.GET("", ph.GetProducts)
		p.GET("/search", ph.SearchProducts)
		p.GET("/filter", ph.FilterProducts)
		p.GET("/least-ordered", ph.GetLeastOrdered)
		p.GET("/best-selling", ph.GetBestSelling)
		p.GET("/category/:categoryName", ph.GetProductsByCategory)
		p.GET("/label/:label", ph.GetProductsByLabel)
		p.GET("/:id", ph.GetProductByID)
		p.POST("", ph.CreateProduct)
		p.PATCH("/:id", ph.UpdateProduct)
		p.DELETE("/:id", ph.DeleteProduct)
	}

	f := router.Group("/favorites", middleware.Authenticate(cfg.JWTSecret))
	{
		f.GET("", fh.GetFavorites)
		f.DELETE("", fh.ClearFavorites)
		f.PUT("/:pid", fh.AddToFavorites)
		f.DELETE("/:pid", fh.RemoveFromFavorites)
	}
}
