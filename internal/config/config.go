package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config regroupe tous les réglages du serveur, tous issus de
// l'environnement. La clé d'IA peut rester vide au démarrage : les endpoints
// d'IA échouent alors au premier appel, jamais au boot.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"dev"`
	Port int    `env:"PORT" envDefault:"8080"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// Persistance : in-memory par défaut, PostgreSQL si DATABASE_URL est défini.
	DatabaseURL string `env:"DATABASE_URL"`

	// Cache produits (optionnel).
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Service d'IA.
	AIAPIKey     string `env:"OPENAI_API_KEY"`
	AIBaseURL    string `env:"OPENAI_BASE_URL"`
	AITextModel  string `env:"AI_TEXT_MODEL"`
	AIImageModel string `env:"AI_IMAGE_MODEL"`

	// Stockage des images : disque local par défaut, MinIO si configuré.
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"matjar-uploads"`
	MinioSecure    bool   `env:"MINIO_SECURE" envDefault:"false"`
}

// Load charge .env (s'il existe) puis parse l'environnement.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("lecture de la configuration: %w", err)
	}
	return cfg, nil
}
