package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"pestplan/config"
	"pestplan/database"
	"pestplan/router"

	"pestplan/pkg/ai"

	// Recommend
	recCtrlImp "pestplan/pkg/recommend/controllerImp"
	recRepoImp "pestplan/pkg/recommend/repositoryImp"
	recSvcImp "pestplan/pkg/recommend/serviceImp"

	// Schedule
	schedCtrlImp "pestplan/pkg/schedule/controllerImp"
	schedRepoImp "pestplan/pkg/schedule/repositoryImp"

	// Export + Health
	exportCtrlImp "pestplan/pkg/export/controllerImp"
	healthCtrlImp "pestplan/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) Gemini — without a key every /recommend returns a config error
	var llm ai.Client
	if cfg.GeminiAPIKey != "" {
		var err error
		llm, err = ai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("gemini client: %v", err)
		}
	} else {
		log.Printf("[main] GOOGLE_API_KEY not set; /recommend will fail until configured")
	}

	// 5) Repos
	recRepo := recRepoImp.New(db)
	schedRepo := schedRepoImp.New(db)

	// 6) Service + controllers
	recSvc := recSvcImp.NewRecommendService(llm, recRepo, schedRepo)
	recCtrl := recCtrlImp.New(recSvc, recRepo)
	scCtrl := schedCtrlImp.New(schedRepo)
	exCtrl := exportCtrlImp.New(recRepo, schedRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, recCtrl, scCtrl, exCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
