// Package router contains routing setup for the HTTP delivery.
package router

import (
	httpmiddleware "tasbal/internal/delivery/http/middleware"
	"tasbal/internal/delivery/http/router/handler"
	"tasbal/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	TaskHandler         *handler.TaskHandler
	BalloonHandler      *handler.BalloonHandler
	IdentityMiddleware  *httpmiddleware.IdentityMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	taskHandler         *handler.TaskHandler
	balloonHandler      *handler.BalloonHandler
	identityMiddleware  *httpmiddleware.IdentityMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		taskHandler:         params.TaskHandler,
		balloonHandler:      params.BalloonHandler,
		identityMiddleware:  params.IdentityMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Guest registration carries no identity yet
	api.POST("/users/guest", r.userHandler.CreateGuest)

	// Public balloon listing needs no identity either
	api.GET("/balloons/public", r.balloonHandler.ListPublicBalloons)

	// Everything else acts on behalf of the X-User-Id caller
	me := api.Group("", r.identityMiddleware.Require)
	{
		me.GET("/me", r.userHandler.GetMe)
		me.GET("/users/me/settings", r.userHandler.GetSettings)
		me.PUT("/users/me/settings", r.userHandler.UpdateSettings)

		me.POST("/tasks", r.taskHandler.CreateTask)
		me.GET("/tasks", r.taskHandler.ListTasks)
		me.GET("/tasks/:id", r.taskHandler.GetTask)
		me.PUT("/tasks/:id", r.taskHandler.UpdateTask)
		me.POST("/tasks/:id/toggle-done", r.taskHandler.ToggleDone)
		me.DELETE("/tasks/:id", r.taskHandler.DeleteTask)

		me.POST("/balloons", r.balloonHandler.CreateBalloon)
		me.GET("/balloons/selection", r.balloonHandler.GetSelection)
		me.PUT("/balloons/selection", r.balloonHandler.SetSelection)
	}
}
