// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"advisor/internal/delivery/api/middleware"
	"advisor/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	QuestionnaireHandler *handler.QuestionnaireHandler
	UserHandler          *handler.UserHandler
	FundHandler          *handler.FundHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	questionnaireHandler *handler.QuestionnaireHandler
	userHandler          *handler.UserHandler
	fundHandler          *handler.FundHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		questionnaireHandler: params.QuestionnaireHandler,
		userHandler:          params.UserHandler,
		fundHandler:          params.FundHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require a resolved caller
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.ResolveUser)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Questionnaire routes
	questionsGroup := e.Group("/questions")
	questionsGroup.Use(r.authMiddleware.ResolveUser)
	{
		questionsGroup.GET("/next", r.questionnaireHandler.NextQuestion)
	}

	// Clients call both with and without the trailing slash.
	responsesGroup := e.Group("/user-responses")
	responsesGroup.Use(r.authMiddleware.ResolveUser)
	{
		responsesGroup.GET("", r.questionnaireHandler.ListResponses)
		responsesGroup.GET("/", r.questionnaireHandler.ListResponses)
		responsesGroup.POST("", r.questionnaireHandler.SubmitResponse)
		responsesGroup.POST("/", r.questionnaireHandler.SubmitResponse)
	}

	// Mutual fund catalog is public
	fundsGroup := e.Group("/mutual-funds")
	{
		fundsGroup.GET("/categories", r.fundHandler.ListCategories)
		fundsGroup.GET("/categories/:id/funds", r.fundHandler.ListFunds)
	}
}
