package resumes

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/extract"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.POST("/resumes", h.create)
	rg.POST("/resumes/upload", h.upload)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	docs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "User ID is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to list resumes", err)
		}
		return
	}
	respond.JSON(c, http.StatusOK, docs)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	doc, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrMalformedID):
			respond.Error(c, http.StatusBadRequest, "Invalid resume id", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to fetch resume", err)
		}
		return
	}
	respond.OK(c, doc)
}

type createRequest struct {
	UserID string `json:"userId"`
	Title  string `json:"title"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	doc, err := h.Svc.Create(c.Request.Context(), strings.TrimSpace(req.UserID), req.Title)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "User ID is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to create resume", err)
		}
		return
	}

	metrics.IncResumesCreated()
	respond.JSON(c, http.StatusCreated, doc)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	doc, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMalformedID):
			respond.Error(c, http.StatusBadRequest, "Invalid resume id", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to update resume", err)
		}
		return
	}

	metrics.IncResumesUpdated()
	respond.OK(c, doc)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrMalformedID):
			respond.Error(c, http.StatusBadRequest, "Invalid resume id", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to delete resume", err)
		}
		return
	}

	metrics.IncResumesDeleted()
	respond.Message(c, http.StatusOK, "Resume removed")
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	userID := strings.TrimSpace(c.PostForm("userId"))
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "User ID is required", nil)
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No file uploaded", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Unable to read file", nil)
		return
	}

	doc, err := h.Svc.ImportPDF(c.Request.Context(), userID, data)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrNotPDF):
			respond.Error(c, http.StatusBadRequest, "Only PDF files are allowed", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "User ID is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to process resume upload", err)
		}
		return
	}

	metrics.IncResumesCreated()
	respond.JSON(c, http.StatusCreated, doc)
}
