package routes

import (
	"net/http"

	"github.com/Francesco-Napolitano/WebAppApi/handlers"
	"github.com/Francesco-Napolitano/WebAppApi/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the router with middleware and all API routes.
func SetupRoutes() *gin.Engine {
	r := gin.New()

	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	brandHandler := handlers.NewBrandHandler()
	collectionHandler := handlers.NewCollectionHandler()
	productHandler := handlers.NewProductHandler()
	fileHandler := handlers.NewFileHandler()

	api := r.Group("/api")
	{
		brands := api.Group("/brands")
		{
			brands.GET("", brandHandler.GetBrands)
			brands.GET("/:id", brandHandler.GetBrand)
			brands.POST("", brandHandler.CreateBrand)
			brands.PUT("/:id", brandHandler.UpdateBrand)
			brands.DELETE("/:id", brandHandler.DeleteBrand)
		}

		collections := api.Group("/collections")
		{
			collections.GET("", collectionHandler.GetCollections)
			collections.GET("/:id", collectionHandler.GetCollection)
			collections.POST("", collectionHandler.CreateCollection)
			collections.PUT("/:id", collectionHandler.UpdateCollection)
			collections.DELETE("/:id", collectionHandler.DeleteCollection)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)

			products.GET("/:id/files", productHandler.GetProductFiles)
			products.POST("/:id/files", productHandler.AttachFiles)
			products.DELETE("/:id/files", productHandler.RemoveFiles)
			products.DELETE("/:id/files/:fileId", productHandler.RemoveFile)
		}

		files := api.Group("/files")
		{
			files.GET("", fileHandler.GetFiles)
			files.GET("/:id", fileHandler.GetFile)
			files.POST("", fileHandler.CreateFile)
			files.DELETE("/:id", fileHandler.DeleteFile)
		}
	}

	return r
}
