package admin

import (
	"net/http"
	"strconv"

	"blogapi/internal/modules/category"
	"blogapi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler exposes the administration surface. Category mutations reuse the
// category service so the same invariants apply on both paths.
type Handler struct {
	service    *Service
	categories *category.Service
}

func NewHandler(service *Service, categories *category.Service) *Handler {
	return &Handler{service: service, categories: categories}
}

// RegisterRoutes mounts everything under /admin. The group must already
// carry the authentication and admin-only middleware.
func (h *Handler) RegisterRoutes(adminGroup *gin.RouterGroup) {
	adminGroup.GET("/users", h.ListUsers)
	adminGroup.GET("/dashboard", h.Dashboard)

	adminGroup.POST("/categories", h.CreateCategory)
	adminGroup.PUT("/categories/:id", h.UpdateCategory)
	adminGroup.DELETE("/categories/:id", h.DeleteCategory)

	adminGroup.PUT("/comments/:id", h.ModerateComment)
	adminGroup.DELETE("/comments/:id", h.RemoveComment)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	created, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, created, "Category created successfully")
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid category ID")
		return
	}

	var req category.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	updated, err := h.categories.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, updated, "Category updated successfully")
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid category ID")
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Category deleted successfully")
}

func (h *Handler) ModerateComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid comment ID")
		return
	}

	var req ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	if err := h.service.ModerateComment(c.Request.Context(), id, req.Content); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Comment updated successfully")
}

func (h *Handler) RemoveComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid comment ID")
		return
	}

	if err := h.service.RemoveComment(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Comment deleted successfully")
}
