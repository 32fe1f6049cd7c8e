package routes

import (
	"net/http"

	"github.com/paveiq/bidmaster/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathProjects  = "/projects"
	PathAdmin     = "/admin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, reportHandler *handlers.ReportHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CalculateEstimate)
		estimates.POST("/upload", estimateHandler.UploadRFP)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("/:id/report.pdf", reportHandler.DownloadPDF)
		projects.GET("/:id/report.csv", reportHandler.DownloadCSV)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, projectHandler *handlers.ProjectHandler) {
	admin := rg.Group(PathAdmin)
	admin.POST("/login", authHandler.Login)

	reviewed := admin.Group(PathProjects)
	reviewed.Use(authHandler.RequireAdmin())
	{
		reviewed.GET("", projectHandler.ListProjects)
		reviewed.GET("/:id", projectHandler.GetProject)
		reviewed.POST("/:id/accept", projectHandler.AcceptProject)
		reviewed.POST("/:id/reject", projectHandler.RejectProject)
		reviewed.DELETE("/:id", projectHandler.DeleteProject)
	}
}
