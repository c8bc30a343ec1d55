package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers endpoints over the archived-report store.
func (ctrl *Controllers) RegisterReportRoutes(r *gin.Engine) {
	g := r.Group("/api/reports")
	g.GET("/search", ctrl.handleSearchReports)
	g.GET("/count", ctrl.handleCountReports)
}

// handleSearchReports finds archived reports similar to the query text.
// GET /api/reports/search?q=...&n=5
func (ctrl *Controllers) handleSearchReports(c *gin.Context) {
	if ctrl.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "document store not configured"})
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter 'q'"})
		return
	}
	n := 5
	if v := c.Query("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'n'"})
			return
		}
		n = parsed
	}

	matches, err := ctrl.Store.QuerySimilar(c.Request.Context(), query, n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// handleCountReports returns how many reports are archived.
// GET /api/reports/count
func (ctrl *Controllers) handleCountReports(c *gin.Context) {
	if ctrl.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "document store not configured"})
		return
	}

	count, err := ctrl.Store.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
