package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler serves generated feed files from the output directory.
type Handler struct {
	outputDir string
	mediaDir  string
	version   string
	startTime time.Time
	log       zerolog.Logger
}

func NewHandler(outputDir, mediaDir, version string, log zerolog.Logger) *Handler {
	return &Handler{
		outputDir: outputDir,
		mediaDir:  mediaDir,
		version:   version,
		startTime: time.Now(),
		log:       log,
	}
}

func (h *Handler) GetFeed(c *gin.Context) {
	name := c.Param("name")
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		c.Status(http.StatusBadRequest)
		return
	}

	if !strings.HasSuffix(name, ".xml") {
		name += ".xml"
	}

	path := filepath.Join(h.outputDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		h.log.Warn().Str("feed", name).Err(err).Msg("feed not found")
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, string(data))
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"feeds":          h.countFiles(h.outputDir, ".xml"),
		"media_files":    h.countFiles(h.mediaDir, ".yaml"),
		"uptime_seconds": int(time.Since(h.startTime).Seconds()),
	})
}

func (h *Handler) countFiles(dir, ext string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ext {
			count++
		}
	}

	return count
}
