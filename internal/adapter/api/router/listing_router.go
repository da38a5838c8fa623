package router

import (
	"researchhub/internal/adapter/api/handler"
	"researchhub/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupListingRouter(e *echo.Echo, listingHandler *handler.ListingHandler, authMiddleware *middleware.AuthMiddleware) {
	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.ListPublic)
	listings.GET("/search", listingHandler.Search)
	listings.GET("/:id", listingHandler.GetByID)

	myListings := e.Group("/v1/my-listings")
	myListings.Use(authMiddleware.Authenticate)
	myListings.GET("", listingHandler.ListOwn)
	myListings.POST("", listingHandler.Create)
	myListings.PUT("/:id", listingHandler.Update)
	myListings.DELETE("/:id", listingHandler.Delete)
}
