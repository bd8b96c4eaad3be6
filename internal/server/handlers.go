package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/molviewer/molviewd/pkg/errors"
	"github.com/molviewer/molviewd/pkg/metrics"
)

type readPDBRequest struct {
	PDBPath string `json:"pdb_path" binding:"required"`
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": s.cfg.Viewer.ServiceName,
	})
}

// handleReadPDB reads a structure file by path and returns its text.
func (s *Server) handleReadPDB(c *gin.Context) {
	var req readPDBRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if apperrors.As(err, &verrs) && len(verrs) > 0 {
			s.logger.Debug("read_pdb validation failed", zap.String("field", verrs[0].Field()))
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "pdb_path required",
		})
		return
	}

	file, err := s.pdbSvc.Read(c.Request.Context(), req.PDBPath)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"content": file.Content,
		"path":    file.Path,
	})
}

// handleIndex serves the main HTML page.
func (s *Server) handleIndex(c *gin.Context) {
	s.serveFile(c, "index.html")
}

// handleStatic serves any other asset relative to the static root.
func (s *Server) handleStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusNotFound)
		return
	}
	s.serveFile(c, c.Request.URL.Path)
}

// serveFile maps a URL path onto the static root and serves the file.
// Cleaning the path rooted at "/" strips any ".." segments, matching the
// traversal handling of the underlying file server.
func (s *Server) serveFile(c *gin.Context, urlPath string) {
	rel := path.Clean("/" + urlPath)
	full := filepath.Join(s.cfg.Viewer.StaticDir, filepath.FromSlash(rel))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		metrics.StaticRequests.WithLabelValues("not_found").Inc()
		c.Status(http.StatusNotFound)
		return
	}

	metrics.StaticRequests.WithLabelValues("ok").Inc()
	c.File(full)
}
