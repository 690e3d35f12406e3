package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dionisvl/my.traffic-lights/internal/config"
	"github.com/dionisvl/my.traffic-lights/internal/database"
	"github.com/dionisvl/my.traffic-lights/internal/handlers"
	"github.com/dionisvl/my.traffic-lights/internal/services"
	"github.com/dionisvl/my.traffic-lights/internal/store"
	"github.com/dionisvl/my.traffic-lights/internal/ws"
)

// @title           Traffic Lights API
// @version         1.0
// @description     Two-player synchronized quiz with real-time updates
// @host            localhost:8080
// @BasePath        /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}
	cfg := config.Load()

	var st store.Store
	if cfg.DatabaseURL != "" {
		db := database.Connect(cfg.DatabaseURL)
		database.AutoMigrate(db)
		st = store.NewPostgresStore(db)
	} else {
		log.Println("DATABASE_URL not set, games are kept in memory")
		st = store.NewMemoryStore()
	}

	hub := ws.NewHub()
	presence := services.NewPresenceTracker()
	gameService := services.NewGameService(st, presence)
	library := services.NewQuestionLibrary(cfg.QuestionsDir)

	gameHandler := handlers.NewGameHandler(gameService)
	questionsHandler := handlers.NewQuestionsHandler(library)
	wsHandler := handlers.NewWSHandler(gameService, hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/game/:id", wsHandler.HandleGameSocket)

	api := r.Group("/api/v1")
	{
		games := api.Group("/games")
		{
			games.POST("", gameHandler.CreateGame)
			games.GET("/:id", gameHandler.GetGame)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", questionsHandler.ListFiles)
			questions.GET("/:name", questionsHandler.GetFile)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
