// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gestcondo/internal/delivery/http/middleware"
	"gestcondo/internal/delivery/http/router/handler"
	"gestcondo/internal/domain/constants"
	"gestcondo/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdminHandler        *handler.AdminHandler
	ResidentHandler     *handler.ResidentHandler
	CondominiumHandler  *handler.CondominiumHandler
	OccurrenceHandler   *handler.OccurrenceHandler
	AssemblyHandler     *handler.AssemblyHandler
	MessageHandler      *handler.MessageHandler
	NotificationHandler *handler.NotificationHandler

	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/admin/login", p.AdminHandler.Login)
		authGroup.POST("/resident/register", p.ResidentHandler.Register)
		authGroup.POST("/resident/login", p.ResidentHandler.Login)
	}

	// Administrator surfaces: authenticated admin role throughout.
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(constants.RoleAdmin))

	// Account management assumes full access when the permission header is
	// absent (internal callers).
	accountGroup := adminGroup.Group("/accounts")
	accountGroup.Use(p.PermissionMiddleware.ResolveScope(entity.FullScope()))
	{
		accountGroup.POST("", p.AdminHandler.Create)
		accountGroup.GET("", p.AdminHandler.List)
		accountGroup.GET("/:id", p.AdminHandler.Get)
		accountGroup.PUT("/:id", p.AdminHandler.Update)
		accountGroup.DELETE("/:id", p.AdminHandler.Delete)

		accountGroup.POST("/memberships", p.ResidentHandler.AddMembership)
	}

	// Notification reads fail closed when the permission header is absent.
	notificationGroup := adminGroup.Group("/notifications")
	notificationGroup.Use(p.PermissionMiddleware.ResolveScope(entity.DeniedScope()))
	{
		notificationGroup.GET("", p.NotificationHandler.ListForAdmin)
		notificationGroup.GET("/unread-count", p.NotificationHandler.UnreadCountForAdmin)
		notificationGroup.PUT("/:id/read", p.NotificationHandler.MarkRead)
		notificationGroup.PUT("/read-all", p.NotificationHandler.MarkAllRead)
		notificationGroup.GET("/stream", p.NotificationHandler.Stream)
	}

	condominiumGroup := adminGroup.Group("/condominiums")
	condominiumGroup.Use(p.PermissionMiddleware.ResolveScope(entity.FullScope()))
	{
		condominiumGroup.POST("", p.CondominiumHandler.Create)
		condominiumGroup.GET("", p.CondominiumHandler.List)
		condominiumGroup.GET("/:id", p.CondominiumHandler.Get)
		condominiumGroup.PUT("/:id", p.CondominiumHandler.Update)
		condominiumGroup.DELETE("/:id", p.CondominiumHandler.Delete)

		condominiumGroup.GET("/:condominiumID/occurrences", p.OccurrenceHandler.ListByCondominium)
		condominiumGroup.GET("/:condominiumID/assemblies", p.AssemblyHandler.ListByCondominium)
	}

	occurrenceGroup := adminGroup.Group("/occurrences")
	{
		occurrenceGroup.POST("", p.OccurrenceHandler.Report)
		occurrenceGroup.GET("/:id", p.OccurrenceHandler.Get)
		occurrenceGroup.PUT("/:id/assign", p.OccurrenceHandler.Assign)
		occurrenceGroup.PUT("/:id/complete", p.OccurrenceHandler.Complete)
		occurrenceGroup.PUT("/:id/verify", p.OccurrenceHandler.Verify)
	}

	assemblyGroup := adminGroup.Group("/assemblies")
	{
		assemblyGroup.POST("", p.AssemblyHandler.Schedule)
		assemblyGroup.GET("/:id", p.AssemblyHandler.Get)
		assemblyGroup.POST("/:id/documents", p.AssemblyHandler.AttachDocument)
	}

	messageGroup := adminGroup.Group("/messages")
	messageGroup.Use(p.PermissionMiddleware.ResolveScope(entity.FullScope()))
	{
		messageGroup.POST("", p.MessageHandler.SendBroadcast)
		messageGroup.GET("/:id", p.MessageHandler.Get)
	}

	// Resident surfaces: authenticated resident role, no permission header.
	residentGroup := e.Group("/resident")
	residentGroup.Use(p.AuthMiddleware.Authenticate)
	residentGroup.Use(p.AuthMiddleware.RequireRole(constants.RoleResident))
	{
		residentGroup.GET("/profile", p.ResidentHandler.GetProfile)
		residentGroup.PUT("/profile", p.ResidentHandler.UpdateProfile)
		residentGroup.DELETE("/profile", p.ResidentHandler.DeleteProfile)
		residentGroup.POST("/devices", p.ResidentHandler.RegisterDevice)
		residentGroup.POST("/complaints", p.ResidentHandler.SubmitComplaint)
		residentGroup.POST("/requests", p.ResidentHandler.SubmitRequest)

		residentGroup.GET("/notifications", p.NotificationHandler.ListForUser)
		residentGroup.GET("/notifications/unread-count", p.NotificationHandler.UnreadCountForUser)
		residentGroup.PUT("/notifications/:id/read", p.NotificationHandler.MarkReadForUser)
		residentGroup.PUT("/notifications/read-all", p.NotificationHandler.MarkAllReadForUser)
	}
}
