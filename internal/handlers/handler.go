package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"matjar_back_end/internal/ai"
	"matjar_back_end/internal/cache"
	"matjar_back_end/internal/i18n"
	"matjar_back_end/internal/services"
	"matjar_back_end/internal/store"
)

// Handler porte les dépendances de l'API. Tout est injecté explicitement
// (pas de singleton global) : les tests branchent un MemoryStore isolé.
type Handler struct {
	Store          store.Store
	AI             *ai.Gateway
	Images         *services.ImageStore
	Cache          *cache.ProductCache
	MaxUploadBytes int64

	// now est remplaçable dans les tests (pied de page daté des exports).
	now func() time.Time
}

// New construit le handler avec ses collaborateurs.
func New(st store.Store, gateway *ai.Gateway, images *services.ImageStore, productCache *cache.ProductCache, maxUploadBytes int64) *Handler {
	return &Handler{
		Store:          st,
		AI:             gateway,
		Images:         images,
		Cache:          productCache,
		MaxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

// Health répond au ping de supervision.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// aiError convertit un échec du gateway en 500 avec un message localisé.
// La clé manquante remonte comme les autres échecs du service (détectée
// paresseusement au premier appel, jamais au démarrage).
func (h *Handler) aiError(c *gin.Context, lang string, err error) {
	log.Println("❌ Erreur service IA:", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":  i18n.ErrorMessage(lang, "ai_failed"),
		"detail": err.Error(),
	})
}

// storeError convertit une erreur du store : les erreurs de validation de
// fusion deviennent des 400, le reste des 500.
func storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrInvalidStatus) || errors.Is(err, store.ErrInvalidQuantity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Println("❌ Erreur store:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne du serveur"})
}
