package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"matjar_back_end/internal/ai"
	"matjar_back_end/internal/docs"
	"matjar_back_end/internal/i18n"
	"matjar_back_end/internal/models"
)

// GetProducts liste tous les produits, du plus récent au plus ancien.
// La liste passe par le cache Redis quand il est configuré.
func (h *Handler) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := h.Cache.GetProducts(ctx); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.Store.GetProducts(ctx)
	if err != nil {
		storeError(c, err)
		return
	}

	h.Cache.SetProducts(ctx, products)
	c.JSON(http.StatusOK, products)
}

// GetProduct retourne un produit par id, 404 si absent.
func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// AnalyzeProduct reçoit la photo (multipart, champ "image"), la fait analyser
// par le modèle multimodal, stocke l'image et persiste le produit créé.
// Les rejets de validation (pas de fichier, pas une image, trop volumineuse)
// partent en 400 avant tout appel au service d'IA.
func (h *Handler) AnalyzeProduct(c *gin.Context) {
	ctx := c.Request.Context()
	lang := i18n.Normalize(c.PostForm("language"))

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.ErrorMessage(lang, "no_file")})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.ErrorMessage(lang, "not_image")})
		return
	}
	if header.Size > h.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.ErrorMessage(lang, "file_too_large")})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.MaxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lecture du fichier impossible"})
		return
	}
	if int64(len(data)) > h.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.ErrorMessage(lang, "file_too_large")})
		return
	}

	analysis, err := h.AI.AnalyzeProductImage(ctx, data, contentType)
	if err != nil {
		h.aiError(c, lang, err)
		return
	}

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	imageURL, err := h.Images.Save(ctx, ext, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stockage de l'image impossible"})
		return
	}

	p, err := h.Store.CreateProduct(ctx, models.CreateProductInput{
		Name:         analysis.Name,
		ImageURL:     imageURL,
		Descriptions: analysis.Descriptions,
		Benefits:     analysis.Benefits,
		Features:     analysis.Features,
		Price:        analysis.Price,
		Category:     analysis.Category,
	})
	if err != nil {
		storeError(c, err)
		return
	}

	h.Cache.Invalidate(ctx)
	c.JSON(http.StatusOK, p)
}

// UpdateProduct applique une mise à jour partielle, 404 si absent.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var patch models.ProductUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.Store.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		storeError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	h.Cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, p)
}

// DeleteProduct supprime le produit puis son image (best-effort : une image
// déjà absente du disque n'empêche jamais la suppression).
func (h *Handler) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	p, err := h.Store.GetProduct(ctx, id)
	if err != nil {
		storeError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	deleted, err := h.Store.DeleteProduct(ctx, id)
	if err != nil {
		storeError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	if p.ImageURL != "" {
		h.Images.Delete(ctx, p.ImageURL)
	}

	h.Cache.Invalidate(ctx)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GenerateMarketing produit le contenu promotionnel du produit dans la
// langue demandée.
func (h *Handler) GenerateMarketing(c *gin.Context) {
	var req struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lang := i18n.Normalize(req.Language)

	p, err := h.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	content, err := h.AI.GenerateMarketingCopy(c.Request.Context(), p, lang)
	if err != nil {
		h.aiError(c, lang, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// GenerateMarketingImage rend le visuel promotionnel en PNG binaire.
func (h *Handler) GenerateMarketingImage(c *gin.Context) {
	var req struct {
		Language     string   `json:"language"`
		Post         string   `json:"post"`
		Hashtags     []string `json:"hashtags"`
		CallToAction string   `json:"callToAction"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lang := i18n.Normalize(req.Language)

	p, err := h.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	png, err := h.AI.GenerateMarketingImage(c.Request.Context(), ai.MarketingImageInput{
		ProductName:  p.Name,
		Post:         req.Post,
		Hashtags:     req.Hashtags,
		CallToAction: req.CallToAction,
	})
	if err != nil {
		h.aiError(c, lang, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"marketing-%s.png\"", p.ID))
	c.Data(http.StatusOK, "image/png", png)
}

// ChatAboutProduct répond à une question client ancrée sur la description du
// produit dans la langue demandée.
func (h *Handler) ChatAboutProduct(c *gin.Context) {
	var req struct {
		Question           string `json:"question"`
		Language           string `json:"language"`
		ProductDescription string `json:"productDescription"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lang := i18n.Normalize(req.Language)

	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.ErrorMessage(lang, "no_question")})
		return
	}

	p, err := h.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	description := req.ProductDescription
	if description == "" {
		description = p.Description(lang)
	}

	answer, err := h.AI.AnswerProductQuestion(c.Request.Context(), req.Question, lang, description)
	if err != nil {
		h.aiError(c, lang, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// ChatGenerateImage produit une image depuis le chat et retourne son URL.
func (h *Handler) ChatGenerateImage(c *gin.Context) {
	var req struct {
		Prompt      string `json:"prompt" binding:"required"`
		ProductName string `json:"productName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	productName := req.ProductName
	if productName == "" {
		productName = p.Name
	}

	imageURL, err := h.AI.GenerateChatImage(c.Request.Context(), req.Prompt, productName)
	if err != nil {
		h.aiError(c, i18n.DefaultLanguage, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}

// ExportProduct rend la fiche produit HTML téléchargeable (?lang=).
func (h *Handler) ExportProduct(c *gin.Context) {
	lang := i18n.Normalize(c.Query("lang"))

	p, err := h.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	document := docs.ProductDocument(p, lang, h.now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"product-%s-%s.html\"", p.ID, lang))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document))
}
