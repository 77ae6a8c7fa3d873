// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"parkpin/internal/delivery/http/middleware"
	"parkpin/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ParkingHandler      *handler.ParkingHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	parkingHandler      *handler.ParkingHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		parkingHandler:      params.ParkingHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Parking location routes that require authentication
	parkingGroup := e.Group("/parking")
	parkingGroup.Use(r.authMiddleware.Authenticate)
	{
		parkingGroup.POST("/locations", r.parkingHandler.SaveLocation)
		parkingGroup.GET("/locations", r.parkingHandler.GetUserLocations)
		parkingGroup.DELETE("/locations/:id", r.parkingHandler.DeleteLocation)
		parkingGroup.GET("/locations/:id/qr", r.parkingHandler.ShareLocationQR)
	}

	// Device routes that require authentication
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
