package ai

import (
	"errors"
	"fmt"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey est renvoyée au premier appel quand aucun credential n'est
// configuré. L'absence de clé ne bloque jamais le démarrage du serveur.
var ErrMissingAPIKey = errors.New("clé API du service d'IA manquante (OPENAI_API_KEY)")

// UpstreamError couvre les échecs du service externe : réponse vide, payload
// non parseable, appel en erreur. Jamais re-tentée automatiquement.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

func upstreamf(op, format string, args ...interface{}) error {
	return &UpstreamError{Op: op, Err: fmt.Errorf(format, args...)}
}

// requestTimeout borne chaque appel au service externe. Un dépassement
// remonte comme UpstreamError via le contexte.
const requestTimeout = 60 * time.Second

// Config porte les réglages du gateway, tous issus de l'environnement.
type Config struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
}

// Gateway encapsule les appels au modèle multimodal : analyse d'image,
// rédaction marketing, génération d'images, questions/réponses. Son seul rôle
// est la construction des prompts, le parsing des réponses et la
// normalisation des erreurs.
type Gateway struct {
	cfg    Config
	once   sync.Once
	client *openai.Client
}

// NewGateway construit le gateway sans valider le credential : le client est
// résolu paresseusement au premier appel.
func NewGateway(cfg Config) *Gateway {
	if cfg.TextModel == "" {
		cfg.TextModel = openai.GPT4o
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = openai.CreateImageModelDallE3
	}
	return &Gateway{cfg: cfg}
}

// Configured indique si un credential est présent (utile pour les logs de
// démarrage, pas pour bloquer quoi que ce soit).
func (g *Gateway) Configured() bool {
	return g.cfg.APIKey != ""
}

// resolve retourne le client partagé, construit une seule fois par process.
func (g *Gateway) resolve() (*openai.Client, error) {
	if g.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	g.once.Do(func() {
		conf := openai.DefaultConfig(g.cfg.APIKey)
		if g.cfg.BaseURL != "" {
			conf.BaseURL = g.cfg.BaseURL
		}
		g.client = openai.NewClientWithConfig(conf)
	})
	return g.client, nil
}
