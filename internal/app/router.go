package app

import (
	"verdant_backend/docs"
	"verdant_backend/internal/middleware"
	"verdant_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.services.auth))
	{
		authGroup.GET("/auth/me", c.auth.Me)

		authGroup.POST("/identify-plant", c.identify.IdentifyPlant)
		authGroup.GET("/identifications", c.identify.ListIdentifications)

		quiz := authGroup.Group("/quiz")
		{
			quiz.GET("/generate", c.quiz.GenerateQuiz)
			quiz.POST("/submit", c.quiz.SubmitQuiz)
			quiz.GET("/history", c.quiz.QuizHistory)
		}
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/", c.health.Root)
		public.GET("/health", c.health.HealthCheck)

		public.POST("/auth/signup", c.auth.Signup)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/plants", c.plant.ListPlants)
		public.GET("/plants/:id", c.plant.GetPlant)
	}
}
