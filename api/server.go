package api

import (
	"github.com/gin-gonic/gin"

	"reprocheck/compare"
	"reprocheck/docstore"
	"reprocheck/pipeline"
)

// Controllers carries the shared service handles. The embedding-backed
// comparators are constructed once at startup and reused read-only across
// requests.
type Controllers struct {
	Text    *compare.TextComparator
	Checker *pipeline.Checker
	Store   docstore.Store // nil when no document store is configured
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(c *Controllers) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	c.RegisterCompareRoutes(r)
	c.RegisterCheckRoutes(r)
	c.RegisterReportRoutes(r)
	RegisterHealthRoutes(r)
	return r
}
