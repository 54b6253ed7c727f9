package app

import (
	"habit_tracker/docs"
	"habit_tracker/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		habits := api.Group("/habits")
		{
			habits.GET("", c.habit.ListHabits)
			habits.POST("", c.habit.CreateHabit)
			habits.GET("/:id", c.habit.GetHabit)
			habits.DELETE("/:id", c.habit.DeleteHabit)

			// 打卡
			habits.POST("/:id/checkins", withParamAlias("id", "habitId"), c.checkin.CheckIn)
			habits.GET("/:id/checkins", withParamAlias("id", "habitId"), c.checkin.ListCheckins)
		}
	}
}

// gin 要求同一层级的通配参数同名，这里把 :id 以 habitId 的名字再暴露给打卡接口
func withParamAlias(from, to string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AddParam(to, c.Param(from))
		c.Next()
	}
}
