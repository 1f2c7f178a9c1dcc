package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerbaras/mangatrack/pkg/data"
	"github.com/kerbaras/mangatrack/pkg/services"
)

type Handler struct {
	Library *services.Library
}

func NewHandler(lib *services.Library) *Handler {
	return &Handler{Library: lib}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/mangas", h.list)
	rg.POST("/mangas", h.add)
	rg.GET("/mangas/:id", h.getOne)
	rg.DELETE("/mangas/:id", h.remove)
	rg.POST("/mangas/:id/check", h.checkOne)
	rg.POST("/mangas/:id/read", h.read)
	rg.POST("/check", h.checkAll)
}

type mangaResp struct {
	*data.Manga
	NewChapterURL string `json:"newChapterUrl,omitempty"`
}

func toResp(m *data.Manga) mangaResp {
	resp := mangaResp{Manga: m}
	if url, err := services.NewChapterURL(m); err == nil {
		resp.NewChapterURL = url
	}
	return resp
}

type addReq struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	LastChapter string `json:"lastChapter"`
}

func (h *Handler) list(c *gin.Context) {
	opt := services.SortPriority
	if s := c.Query("sort"); s != "" {
		parsed, err := services.ParseSortOption(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		opt = parsed
	}

	mangas := h.Library.Sorted(opt)
	items := make([]mangaResp, len(mangas))
	for i, m := range mangas {
		items[i] = toResp(m)
	}
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"sort":  opt.String(),
		"items": items,
	})
}

func (h *Handler) add(c *gin.Context) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	manga, err := h.Library.Add(c.Request.Context(), services.AddInput{
		Name:        req.Name,
		URL:         req.URL,
		LastChapter: req.LastChapter,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResp(manga))
}

func (h *Handler) getOne(c *gin.Context) {
	manga, err := h.Library.Find(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResp(manga))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Library.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) checkOne(c *gin.Context) {
	report, err := h.Library.Check(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) checkAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.Library.CheckForUpdates(c.Request.Context()))
}

func (h *Handler) read(c *gin.Context) {
	url, err := h.Library.AdvanceToNewChapter(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidURL),
		errors.Is(err, services.ErrNoNewChapter),
		errors.Is(err, services.ErrInvalidChapter),
		errors.Is(err, services.ErrNoChapterPattern):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
