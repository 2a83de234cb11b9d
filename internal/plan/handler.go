package plan

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gk2403-techi/greenscape/internal/logging"
	"github.com/Gk2403-techi/greenscape/internal/storage"
)

// IndexTemplate is the name the router registers the page template under.
const IndexTemplate = "index.html"

const uploadPrefix = "uploads"

type Handler struct {
	engine *Engine
	store  storage.ObjectStore
	logger *zap.Logger
}

func NewHandler(engine *Engine, store storage.ObjectStore, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, store: store, logger: logging.OrNop(logger)}
}

// --------------------------------------------------
// GET /
// --------------------------------------------------
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, IndexTemplate, gin.H{
		"result":        nil,
		"bulk_plans":    nil,
		"current_state": nil,
	})
}

// --------------------------------------------------
// POST /generate
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	state := stateFromForm(c)

	file, err := c.FormFile("file")
	switch {
	case err == nil:
		url, upErr := h.upload(c, file)
		if upErr != nil {
			h.fail(c, upErr)
			return
		}
		state.OriginalImage = url
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	ctx := c.Request.Context()

	if c.PostForm("bulk_mode") == "on" {
		plans := h.engine.Variations(ctx, state, BulkVariations)
		h.respond(c, gin.H{"bulk_plans": plans}, gin.H{
			"result":        nil,
			"bulk_plans":    plans,
			"current_state": state,
			"persona":       state.PersonaOrDefault(),
		})
		return
	}

	result := h.engine.Compute(ctx, state)
	h.respond(c, gin.H{"plan": result}, gin.H{
		"result":        result,
		"bulk_plans":    nil,
		"current_state": state,
		"persona":       state.PersonaOrDefault(),
	})
}

func (h *Handler) respond(c *gin.Context, jsonBody, view gin.H) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, jsonBody)
		return
	}
	c.HTML(http.StatusOK, IndexTemplate, view)
}

func (h *Handler) upload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if h.store == nil {
		return "", storage.ValidateImageExtension(file.Filename)
	}
	return storage.UploadMultipartFile(c.Request.Context(), h.store, uploadPrefix, file)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrFileType) || errors.Is(err, storage.ErrMissingExtension) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only jpg, jpeg, png or webp images are allowed"})
		return
	}
	h.logger.Error("reference image upload failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store reference image"})
}

func stateFromForm(c *gin.Context) ProjectState {
	return ProjectState{
		Persona:          c.PostForm("user_persona"),
		ProjectType:      c.PostForm("project_type"),
		Style:            c.PostForm("style"),
		QualityTier:      c.PostForm("quality_tier"),
		UserBudget:       Numeric(c.PostForm("user_budget")),
		Dimensions:       Numeric(c.PostForm("dimensions")),
		Soil:             c.PostForm("soil"),
		Currency:         c.PostForm("currency"),
		Terrain:          c.PostForm("terrain"),
		Usage:            c.PostForm("usage"),
		Privacy:          c.PostForm("privacy"),
		WaterFeature:     c.PostForm("water_feature"),
		ZipCode:          c.PostForm("zip_code"),
		Climate:          c.PostForm("climate"),
		MaintenanceLevel: c.PostForm("maintenance_level"),
	}
}
