package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigflow_backend/internal/middleware"
	"gigflow_backend/internal/services"
	"gigflow_backend/internal/services/dto"
)

type GigHandler struct {
	*BaseHandler
	gigService    services.GigService
	reviewService services.ReviewService
}

func NewGigHandler(base *BaseHandler, gigService services.GigService, reviewService services.ReviewService) *GigHandler {
	return &GigHandler{
		BaseHandler:   base,
		gigService:    gigService,
		reviewService: reviewService,
	}
}

func (h *GigHandler) RegisterRoutes(rg *gin.RouterGroup) {
	gigs := rg.Group("/gigs")
	{
		gigs.GET("", h.List)
		gigs.GET("/:id", h.Get)
		gigs.GET("/:id/reviews", h.ListReviews)
	}

	authed := rg.Group("/gigs")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.Create)
		authed.PATCH("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
	}

	mine := rg.Group("/my/gigs")
	mine.Use(middleware.AuthMiddleware())
	{
		mine.GET("", h.ListMine)
	}
}

func (h *GigHandler) List(c *gin.Context) {
	var query dto.GigListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)
	p := ParsePagination(c)

	resp, err := h.gigService.List(db, &query, p)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *GigHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	gig, err := h.gigService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

func (h *GigHandler) ListReviews(c *gin.Context) {
	db := h.GetDB(c)
	p := ParsePagination(c)

	resp, err := h.reviewService.ListByGig(db, c.Param("id"), p)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *GigHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	gig, err := h.gigService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gig)
}

func (h *GigHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	gig, err := h.gigService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

func (h *GigHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.gigService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gig deleted"})
}

func (h *GigHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	p := ParsePagination(c)

	resp, err := h.gigService.ListByOwner(db, userID, p)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
