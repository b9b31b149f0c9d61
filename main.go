package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ChristelOko/BarometreHED-sub001/config"
	"github.com/ChristelOko/BarometreHED-sub001/middleware"
	"github.com/ChristelOko/BarometreHED-sub001/routes"
	"github.com/ChristelOko/BarometreHED-sub001/services"
	"github.com/ChristelOko/BarometreHED-sub001/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// Journalisation
	if err := config.InitLogger(); err != nil {
		log.Fatalf("initialisation du journal impossible: %v", err)
	}
	defer config.Logger.Sync()

	// Configuration
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("chargement de la configuration impossible: %v", err)
		return
	}

	utils.InitJWT(conf.JWTSecret)

	// Base de données
	if err := config.InitDB(conf); err != nil {
		log.Fatalf("initialisation de la base impossible: %v", err)
		return
	}

	// Redis
	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("initialisation de Redis impossible: %v", err)
		return
	}

	// Catalogue de ressentis, figé pour la session
	catalog, err := services.LoadCatalog()
	if err != nil {
		log.Fatalf("chargement du catalogue impossible: %v", err)
	}

	// Client LLM (voix d'Aminata)
	aminataClient, err := services.NewAminataClient(conf.OpenAIAPIKey, conf.OpenAIAPIEndpoint, conf.OpenAIModel)
	if err != nil {
		log.Fatalf("initialisation du client OpenAI impossible: %v", err)
	}

	// Services
	memoryService := services.NewMemoryService(services.NewRedisMemoryStore(config.RedisClient))
	memoryService.Subscribe(func(userID string) {
		config.Logger.Debugw("mémoire conversationnelle mise à jour", "uid", userID)
	})
	guidanceService := services.NewGuidanceService(services.NewGormTemplateSource(config.DB), catalog)
	aminataService := services.NewAminataService(aminataClient, memoryService)

	// Mode Gin
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Middlewares
	middleware.SetupMiddleware(r)

	// Routes
	routes.RegisterRoutes(r, catalog, aminataService, memoryService, guidanceService)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("serveur démarré sur le port %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("démarrage du serveur échoué: %v", err)
		}
	}()

	// Arrêt propre sur signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("arrêt du serveur...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("arrêt du serveur échoué: %v", err)
	}

	// Drainage des générations Aminata en cours
	aminataService.Wait()
	log.Println("serveur arrêté")
}
