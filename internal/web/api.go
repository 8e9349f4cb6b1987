package web

import (
	"net/http"

	"github.com/chandan25sharma/portfolio/internal/catalog"
	"github.com/chandan25sharma/portfolio/internal/content"
	"github.com/gin-gonic/gin"
)

// RegisterAPI exposes the static records as JSON.
func RegisterAPI(r gin.IRouter) {
	r.GET("/projects", listProjects)
	r.GET("/projects/:id", getProject)
	r.GET("/categories", listCategories)

	research := r.Group("/research")
	research.GET("/domains", listDomains)
	research.GET("/experiments", listExperiments)
	research.GET("/experiments/:id", getExperiment)
}

func listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.FilterByCategory(content.Projects(), c.Query("category")))
}

func getProject(c *gin.Context) {
	p, ok := content.ProjectByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Categories(content.Projects()))
}

func listDomains(c *gin.Context) {
	c.JSON(http.StatusOK, content.Domains())
}

func listExperiments(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.ExperimentsInDomain(content.Experiments(), c.Query("domain")))
}

func getExperiment(c *gin.Context) {
	e, ok := content.ExperimentByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "experiment not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}
