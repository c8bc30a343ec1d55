package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// RegisterCheckRoutes registers the file check endpoint.
func (ctrl *Controllers) RegisterCheckRoutes(r *gin.Engine) {
	r.POST("/api/check", ctrl.handleCheck)
}

// handleCheck accepts a multipart upload with an "expected" and an "actual"
// file, runs the full validation + comparison pipeline, and returns the
// outcome. Validation failures come back as a normal outcome with status
// "validation_failed", never as an HTTP error.
// POST /api/check
func (ctrl *Controllers) handleCheck(c *gin.Context) {
	expected, err := c.FormFile("expected")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'expected' file: " + err.Error()})
		return
	}
	actual, err := c.FormFile("actual")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'actual' file: " + err.Error()})
		return
	}

	dir, err := os.MkdirTemp("", "reprocheck-*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage uploads: " + err.Error()})
		return
	}
	defer os.RemoveAll(dir)

	expectedPath := filepath.Join(dir, "expected_"+filepath.Base(expected.Filename))
	actualPath := filepath.Join(dir, "actual_"+filepath.Base(actual.Filename))

	if err := c.SaveUploadedFile(expected, expectedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload: " + err.Error()})
		return
	}
	if err := c.SaveUploadedFile(actual, actualPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload: " + err.Error()})
		return
	}

	outcome, err := ctrl.Checker.Run(c.Request.Context(), expectedPath, actualPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "check failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, outcome)
}
