package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterCompareRoutes registers the text comparison endpoint.
func (ctrl *Controllers) RegisterCompareRoutes(r *gin.Engine) {
	r.POST("/api/compare", ctrl.handleCompare)
}

// CompareRequest is a pair of text snippets to score.
type CompareRequest struct {
	Expected string `json:"expected" binding:"required"`
	Actual   string `json:"actual"`
}

// CompareResponse carries the composite score and its verdict.
type CompareResponse struct {
	CompositeScore float64 `json:"composite_score"`
	Result         string  `json:"result"`
}

// handleCompare scores two text snippets.
// POST /api/compare
func (ctrl *Controllers) handleCompare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctrl.Text.Compare(c.Request.Context(), req.Expected, req.Actual)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "comparison failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, CompareResponse{
		CompositeScore: result.CompositeScore,
		Result:         result.Result,
	})
}
