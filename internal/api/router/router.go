package router

import (
	"github.com/wb-go/wbf/ginext"

	"webhook-timer/internal/api/handlers/timer"
	"webhook-timer/internal/api/handlers/webhook"
	"webhook-timer/internal/api/handlers/ws"
	"webhook-timer/internal/middlewares"
)

func New(timers *timer.Handler, webhooks *webhook.Handler, observers *ws.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		t := api.Group("/timers")
		{
			t.POST("/", timers.Create)
			t.POST("/batch", timers.CreateBatch)
			t.GET("/", timers.GetAll)
			t.GET("/:id/status", timers.GetStatus)
			t.GET("/:id/activities", timers.GetTimerActivities)
			t.POST("/:id/cancel", timers.Cancel)
			t.DELETE("/:id", timers.Delete)
		}

		api.GET("/activities", timers.GetActivities)

		w := api.Group("/webhooks")
		{
			w.POST("/", webhooks.Create)
			w.GET("/", webhooks.GetAll)
			w.DELETE("/:id", webhooks.Delete)
			w.POST("/test", webhooks.Test)
			w.POST("/send", webhooks.Send)
		}
	}

	e.GET("/ws", observers.Serve)

	return e
}
