package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"matjar_back_end/internal/docs"
	"matjar_back_end/internal/i18n"
	"matjar_back_end/internal/models"
)

// GetOrders liste toutes les commandes, de la plus récente à la plus ancienne.
func (h *Handler) GetOrders(c *gin.Context) {
	orders, err := h.Store.GetOrders(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder retourne une commande par id, 404 si absente.
func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.Store.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	c.JSON(http.StatusOK, o)
}

// GetProductOrders liste les commandes d'un produit.
func (h *Handler) GetProductOrders(c *gin.Context) {
	orders, err := h.Store.GetOrdersByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder crée une commande : le produit référencé doit exister au moment
// de la création (404 sinon), et le script de confirmation est généré une
// seule fois ici, dans la langue choisie. Il n'est jamais régénéré ensuite.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req struct {
		ProductID       string `json:"productId" binding:"required"`
		CustomerName    string `json:"customerName" binding:"required"`
		CustomerPhone   string `json:"customerPhone" binding:"required"`
		CustomerAddress string `json:"customerAddress"`
		CustomerCity    string `json:"customerCity"`
		Notes           string `json:"notes"`
		Quantity        int    `json:"quantity" binding:"omitempty,min=1"`
		Language        string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	lang := i18n.Normalize(req.Language)

	p, err := h.Store.GetProduct(ctx, req.ProductID)
	if err != nil {
		storeError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	script := docs.ConfirmationScript(p, docs.Customer{
		Name:     req.CustomerName,
		Phone:    req.CustomerPhone,
		Address:  req.CustomerAddress,
		City:     req.CustomerCity,
		Quantity: quantity,
	}, lang)

	o, err := h.Store.CreateOrder(ctx, models.CreateOrderInput{
		ProductID:          req.ProductID,
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		CustomerAddress:    req.CustomerAddress,
		CustomerCity:       req.CustomerCity,
		Notes:              req.Notes,
		Quantity:           quantity,
		Language:           lang,
		ConfirmationScript: script,
	})
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

// UpdateOrder applique une mise à jour partielle (typiquement le statut).
// Tout statut peut suivre tout autre, mais il doit rester dans l'ensemble fixe.
func (h *Handler) UpdateOrder(c *gin.Context) {
	var patch models.OrderUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.Store.UpdateOrder(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		storeError(c, err)
		return
	}
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	c.JSON(http.StatusOK, o)
}

// DeleteOrder supprime une commande.
func (h *Handler) DeleteOrder(c *gin.Context) {
	deleted, err := h.Store.DeleteOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportOrder rend la fiche commande HTML téléchargeable (?lang=). Si le
// produit référencé a été supprimé, la fiche se rend sans ses détails.
func (h *Handler) ExportOrder(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.Store.GetOrder(ctx, c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	lang := c.Query("lang")
	if lang == "" {
		lang = o.Language
	}
	lang = i18n.Normalize(lang)

	// Référence faible : un produit supprimé ne bloque pas l'export.
	p, err := h.Store.GetProduct(ctx, o.ProductID)
	if err != nil {
		storeError(c, err)
		return
	}

	document := docs.OrderDocument(o, p, lang, h.now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"order-%s-%s.html\"", o.ID, lang))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document))
}
