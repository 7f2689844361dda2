package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigflow_backend/internal/middleware"
	"gigflow_backend/internal/models"
	"gigflow_backend/internal/services"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

type UserHandler struct {
	*BaseHandler
	userService  services.UserService
	txService    services.TransactionService
	auditService services.AuditService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, txService services.TransactionService, auditService services.AuditService) *UserHandler {
	return &UserHandler{
		BaseHandler:  base,
		userService:  userService,
		txService:    txService,
		auditService: auditService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	me := rg.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", h.GetMe)
		me.PATCH("/profile", h.UpdateProfile)
		me.GET("/transactions", h.ListMyTransactions)
	}

	rg.GET("/users/:id", h.GetUser)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/users", h.AdminListUsers)
		admin.PATCH("/users/:id/role", h.AdminChangeRole)
		admin.DELETE("/users/:id", h.AdminDeleteUser)
		admin.GET("/stats", h.AdminStats)
		admin.GET("/audit-logs", h.AdminListAuditLogs)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.GetByID(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.userService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.UpdateProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) ListMyTransactions(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	p := ParsePagination(c)

	resp, err := h.txService.ListByUser(db, userID, p)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) AdminListUsers(c *gin.Context) {
	db := h.GetDB(c)
	p := ParsePagination(c)

	resp, err := h.userService.ListUsers(db, p)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) AdminChangeRole(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.ChangeRole(db, adminID, c.Param("id"), models.UserRole(req.Role)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}

func (h *UserHandler) AdminDeleteUser(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.DeleteUser(db, adminID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *UserHandler) AdminStats(c *gin.Context) {
	db := h.GetDB(c)

	stats, err := h.userService.SystemStats(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// AdminListAuditLogs filters the audit trail by entity or by actor.
func (h *UserHandler) AdminListAuditLogs(c *gin.Context) {
	db := h.GetDB(c)
	p := ParsePagination(c)

	if userID := c.Query("user_id"); userID != "" {
		resp, err := h.auditService.ListByUser(db, userID, p)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")
	if entityType == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("entity_type or user_id query parameter is required"))
		return
	}

	resp, err := h.auditService.ListByEntity(db, entityType, entityID, p)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
