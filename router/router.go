package router

import (
	"github.com/labstack/echo/v4"

	recctrl "pestplan/pkg/recommend/controller"
	schedctrl "pestplan/pkg/schedule/controller"
)

func New(
	e *echo.Echo,
	recCtrl recctrl.RecommendController,
	schedCtrl schedctrl.ScheduleController,
	exportCtrl interface{ Export(echo.Context) error },
	healthCtrl interface {
		Root(echo.Context) error
		Health(echo.Context) error
	},
) *echo.Echo {
	e.GET("/", healthCtrl.Root)
	e.GET("/health", healthCtrl.Health)

	e.POST("/recommend", recCtrl.Recommend)

	g := e.Group("/recommendations")
	g.GET("", recCtrl.History)
	g.GET("/export", exportCtrl.Export)
	g.GET("/:id/schedule", schedCtrl.List)

	e.PATCH("/schedule/:task_id", schedCtrl.Patch)
	return e
}
