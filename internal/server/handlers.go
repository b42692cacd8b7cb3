package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alkime/postcraft/internal/ai"
	"github.com/alkime/postcraft/internal/export"
	"github.com/alkime/postcraft/internal/post"
)

// User-facing failure messages, one per operation. Provider detail goes to
// the log, not the client.
const (
	msgGenerateFailed  = "投稿の生成に失敗しました。"
	msgAdjustFailed    = "投稿の調整に失敗しました。"
	msgImageFailed     = "画像の生成に失敗しました。"
	msgStructureFailed = "構造図の生成に失敗しました。"
	msgMissingAPIKey   = "APIキーが設定されていません。"
)

// respondError maps a generation-layer error onto an HTTP status. Caller
// contract errors carry their own detail; provider failures get the
// operation's localized message.
func (s *Server) respondError(c *gin.Context, err error, providerMsg string) {
	switch {
	case errors.Is(err, post.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ai.ErrMissingCredential):
		s.logger.Error("Provider credential missing", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgMissingAPIKey})
	default:
		s.logger.Error("Provider call failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": providerMsg})
	}
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req post.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	posts, err := s.generator.GeneratePosts(c.Request.Context(), req)
	if err != nil {
		s.respondError(c, err, msgGenerateFailed)
		return
	}

	s.working.Replace(posts)
	s.logger.Info("Generated posts", "count", len(posts), "topic", req.Topic)
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (s *Server) handleListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": s.working.List()})
}

func (s *Server) handleAdjust(c *gin.Context) {
	id := c.Param("id")
	original, ok := s.working.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	var req post.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	revised, err := s.generator.AdjustPost(c.Request.Context(), original, req)
	if err != nil {
		s.respondError(c, err, msgAdjustFailed)
		return
	}

	// Zero-value adjustments come back unchanged without a provider call;
	// writing them through is harmless.
	s.working.Update(id, revised)
	c.JSON(http.StatusOK, gin.H{"post": revised})
}

func (s *Server) handleImage(c *gin.Context) {
	id := c.Param("id")
	target, ok := s.working.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	var body struct {
		Tone post.ImageTone `json:"tone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dataURI, err := s.generator.GenerateImage(c.Request.Context(), post.ImageRequest{
		SourceText: target.Post,
		Tone:       body.Tone,
	})
	if err != nil {
		s.respondError(c, err, msgImageFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": dataURI})
}

func (s *Server) handleStructure(c *gin.Context) {
	id := c.Param("id")
	target, ok := s.working.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	var body struct {
		DetailLevel int              `json:"detailLevel"`
		DiagramType post.DiagramType `json:"diagramType"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	diagram, err := s.generator.GenerateStructure(c.Request.Context(), post.StructureRequest{
		SourceText:  target.Post,
		DetailLevel: body.DetailLevel,
		DiagramType: body.DiagramType,
	})
	if err != nil {
		s.respondError(c, err, msgStructureFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"diagram": diagram})
}

func (s *Server) handleListSaved(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": s.saved.List()})
}

func (s *Server) handleSave(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	target, ok := s.working.Get(body.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	if err := s.saved.Save(c.Request.Context(), target); err != nil {
		s.logger.Error("Failed to save post", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": s.saved.List()})
}

func (s *Server) handleRemoveSaved(c *gin.Context) {
	if err := s.saved.Remove(c.Request.Context(), c.Param("id")); err != nil {
		s.logger.Error("Failed to remove saved post", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove saved post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": s.saved.List()})
}

func (s *Server) handleExportCSV(c *gin.Context) {
	content := export.CSV(s.working.List())
	if content == "" {
		c.Status(http.StatusNoContent)
		return
	}
	filename := fmt.Sprintf("posts_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

func (s *Server) handleExportDocument(c *gin.Context) {
	content := export.Document(s.working.List())
	if content == "" {
		c.Status(http.StatusNoContent)
		return
	}
	filename := fmt.Sprintf("posts_%s.md", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(content))
}
