package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore stocke les photos produits uploadées. Deux backends : le disque
// local (répertoire uploads/, servi statiquement), ou MinIO quand
// MINIO_ENDPOINT est configuré. Les URLs publiques sont toujours relatives
// (/uploads/<nom>), quel que soit le backend.
type ImageStore struct {
	dir    string
	client *minio.Client
	bucket string
}

// MinioConfig porte les réglages du backend objet.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Secure    bool
}

// NewLocalImageStore crée le backend disque et son répertoire.
func NewLocalImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("création du répertoire uploads: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// NewMinioImageStore crée le backend MinIO.
func NewMinioImageStore(cfg MinioConfig) (*ImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("connexion MinIO: %w", err)
	}
	return &ImageStore{client: client, bucket: cfg.Bucket}, nil
}

// Local indique si les images sont servies depuis le disque (le serveur
// n'expose la route statique /uploads que dans ce cas).
func (s *ImageStore) Local() bool { return s.client == nil }

// Dir retourne le répertoire local des uploads.
func (s *ImageStore) Dir() string { return s.dir }

// Save écrit l'image et retourne son URL publique relative. Le nom est unique
// (horodatage en nanosecondes + extension d'origine).
func (s *ImageStore) Save(ctx context.Context, ext, contentType string, r io.Reader, size int64) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	if s.client != nil {
		_, err := s.client.PutObject(ctx, s.bucket, name, r, size,
			minio.PutObjectOptions{ContentType: contentType})
		if err != nil {
			return "", fmt.Errorf("upload MinIO: %w", err)
		}
		return "/uploads/" + name, nil
	}

	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("écriture de l'image: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("écriture de l'image: %w", err)
	}
	return "/uploads/" + name, nil
}

// Delete supprime l'image référencée par son URL publique. Best-effort :
// un fichier déjà absent est un no-op, jamais une erreur. La suppression du
// produit ne doit pas échouer à cause d'une image manquante.
func (s *ImageStore) Delete(ctx context.Context, imageURL string) {
	if !strings.HasPrefix(imageURL, "/uploads/") {
		return
	}
	name := strings.TrimPrefix(imageURL, "/uploads/")
	if name == "" {
		return
	}

	if s.client != nil {
		if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
			log.Println("⚠️ Suppression MinIO échouée:", err)
		}
		return
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		log.Println("⚠️ Suppression du fichier image échouée:", err)
	}
}
