package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"matjar_back_end/internal/ai"
	"matjar_back_end/internal/cache"
	"matjar_back_end/internal/config"
	"matjar_back_end/internal/handlers"
	"matjar_back_end/internal/routes"
	"matjar_back_end/internal/services"
	"matjar_back_end/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Configuration invalide:", err)
	}

	// --- Persistance ---
	var st store.Store
	if cfg.DatabaseURL != "" {
		gormStore, err := store.NewGormStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Impossible d'initialiser PostgreSQL:", err)
		}
		st = gormStore
		log.Println("✅ Store PostgreSQL initialisé")
	} else {
		st = store.NewMemoryStore()
		log.Println("⚠️  DATABASE_URL absent — store en mémoire (les données ne survivent pas au redémarrage)")
	}

	// --- Cache Redis (optionnel) ---
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Println("⚠️ Redis inaccessible, cache désactivé:", err)
			redisClient = nil
		} else {
			log.Println("✅ Cache Redis connecté")
		}
		cancel()
	}

	// --- Stockage des images ---
	var images *services.ImageStore
	if cfg.MinioEndpoint != "" {
		images, err = services.NewMinioImageStore(services.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			Secure:    cfg.MinioSecure,
		})
		if err != nil {
			log.Fatal("❌ Impossible d'initialiser MinIO:", err)
		}
		log.Println("✅ Stockage images MinIO:", cfg.MinioEndpoint)
	} else {
		images, err = services.NewLocalImageStore(cfg.UploadDir)
		if err != nil {
			log.Fatal("❌ Impossible de créer le répertoire uploads:", err)
		}
		log.Println("✅ Stockage images local:", cfg.UploadDir)
	}

	// --- Gateway IA (résolution paresseuse : pas de clé = pas de blocage au boot) ---
	gateway := ai.NewGateway(ai.Config{
		APIKey:     cfg.AIAPIKey,
		BaseURL:    cfg.AIBaseURL,
		TextModel:  cfg.AITextModel,
		ImageModel: cfg.AIImageModel,
	})
	if gateway.Configured() {
		log.Println("✅ Service IA configuré")
	} else {
		log.Println("⚠️ OPENAI_API_KEY absent — les endpoints IA échoueront au premier appel")
	}

	// --- Serveur HTTP ---
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(st, gateway, images, cache.NewProductCache(redisClient), cfg.MaxUploadBytes)
	routes.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("🚀 Serveur Matjar lancé sur le port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Serveur HTTP:", err)
		}
	}()

	<-ctx.Done()
	log.Println("⏳ Arrêt du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Arrêt forcé:", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}
	log.Println("✅ Serveur arrêté proprement")
}
