// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pizzahouse/internal/delivery/api/middleware"
	"pizzahouse/internal/delivery/api/router/handler"
	"pizzahouse/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ZoneHandler       *handler.ZoneHandler
	OrderHandler      *handler.OrderHandler
	RestaurantHandler *handler.RestaurantHandler
	WebSocketHandler  *handler.WebSocketHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	zoneHandler       *handler.ZoneHandler
	orderHandler      *handler.OrderHandler
	restaurantHandler *handler.RestaurantHandler
	webSocketHandler  *handler.WebSocketHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		zoneHandler:       params.ZoneHandler,
		orderHandler:      params.OrderHandler,
		restaurantHandler: params.RestaurantHandler,
		webSocketHandler:  params.WebSocketHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Staff dashboards, origin-checked by the hub
	e.GET("/ws/orders", r.webSocketHandler.OrderStream)

	// Public catalog routes
	zonesGroup := e.Group("/zones")
	{
		zonesGroup.GET("", r.zoneHandler.ListZones)
		zonesGroup.POST("/resolve", r.zoneHandler.ResolveZone)
		zonesGroup.GET("/:id", r.zoneHandler.GetZone)
		zonesGroup.GET("/:id/slots", r.zoneHandler.AvailableSlots)
	}
	e.GET("/restaurants/nearest", r.restaurantHandler.NearestRestaurant)

	// Customer routes that require authentication
	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListMyOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
	}

	// Admin routes that require authentication and "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                      // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin)) // Then, check for the role
	{
		adminGroup.POST("/zones", r.zoneHandler.CreateZone)
		adminGroup.POST("/zones/restore-defaults", r.zoneHandler.RestoreDefaultZones)
		adminGroup.PUT("/zones/:id", r.zoneHandler.UpdateZone)
		adminGroup.DELETE("/zones/:id", r.zoneHandler.DeactivateZone)

		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.PUT("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
	}
}
