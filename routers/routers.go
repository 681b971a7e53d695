package routers

import (
	"Market/config"
	"Market/handlers"
	"Market/middleware"
	"Market/service"
	"github.com/gin-gonic/gin"
	"log"
)

func SetupRouters(cfg config.ServerConfig, db handlers.Pinger, carts *service.CartService, items *service.ItemService) *gin.Engine {
	handlers.RegisterJSONFieldNames()

	router := gin.New()
	router.ContextWithFallback = true
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.CORSMiddleware(cfg.AllowOrigins),
	)
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Printf("failed to reset trusted proxies: %v", err)
	}

	router.GET("/healthz", func(context *gin.Context) {
		handlers.HealthHandler(context, db)
	})

	//every route below is served under server.base_path ("/api" by default,
	//"" for bare /carts and /items)
	api := router.Group(cfg.BasePath)
	{
		cartRoutes := api.Group("/carts")
		{
			//create a cart with its items
			cartRoutes.POST("/create-cart", func(context *gin.Context) {
				handlers.CreateCartHandler(context, carts)
			})
			//?page=&size=
			cartRoutes.GET("", func(context *gin.Context) {
				handlers.GetCartPageHandler(context, carts)
			})
			//every cart, unpaged
			cartRoutes.GET("/get-carts", func(context *gin.Context) {
				handlers.GetAllCartsHandler(context, carts)
			})
			//single cart
			cartRoutes.GET("/:id", func(context *gin.Context) {
				handlers.GetCartHandler(context, carts)
			})
			//cascades to the cart's items
			cartRoutes.DELETE("/delete-cart/:id", func(context *gin.Context) {
				handlers.DeleteCartHandler(context, carts)
			})
		}

		itemRoutes := api.Group("/items")
		{
			itemRoutes.GET("", func(context *gin.Context) {
				handlers.GetAllItemsHandler(context, items)
			})
			itemRoutes.GET("/:id", func(context *gin.Context) {
				handlers.GetItemHandler(context, items)
			})
			itemRoutes.POST("/create-item", func(context *gin.Context) {
				handlers.CreateItemHandler(context, items)
			})
			itemRoutes.PUT("/:id", func(context *gin.Context) {
				handlers.UpdateItemHandler(context, items)
			})
			itemRoutes.DELETE("/:id", func(context *gin.Context) {
				handlers.DeleteItemHandler(context, items)
			})
		}
	}

	return router
}
