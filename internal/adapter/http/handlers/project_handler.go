package handlers

import (
	"context"
	"errors"
	"net/http"

	response "github.com/paveiq/bidmaster/internal/adapter/http/dto/response"
	"github.com/paveiq/bidmaster/internal/domain/entities"
	"github.com/paveiq/bidmaster/internal/usecase"
	"github.com/paveiq/bidmaster/pkg"

	"github.com/gin-gonic/gin"
)

// ProjectHandler exposes the admin review operations: list, inspect,
// accept/reject and delete persisted projects.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// ListProjects returns projects filtered by ?status= (default "pending",
// "all" lists everything).
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjectDetail(p))
}

func (h *ProjectHandler) AcceptProject(c *gin.Context) {
	h.patchProjectStatus(c, h.usecase.Accept)
}

func (h *ProjectHandler) RejectProject(c *gin.Context) {
	h.patchProjectStatus(c, h.usecase.Reject)
}

func (h *ProjectHandler) patchProjectStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Project, error),
) {
	p, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
