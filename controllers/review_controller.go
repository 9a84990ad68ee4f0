package controllers

import (
	"errors"
	"strconv"

	"verduleria/models"
	"verduleria/repositories"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewRepo *repositories.ReviewRepository
}

func NewReviewController() *ReviewController {
	return &ReviewController{
		reviewRepo: repositories.NewReviewRepository(),
	}
}

// @Summary Get reviews
// @Tags Reviews
// @Produce json
// @Param limit query int false "Max results" default(5)
// @Success 200 {object} models.Response
// @Router /reviews [get]
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit < 1 {
		limit = 5
	}
	if limit > 50 {
		limit = 50
	}

	reviews, err := ctrl.reviewRepo.ListReviews(c.Request.Context(), limit)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to get reviews", Error: err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Reviews retrieved", Data: reviews})
}

// @Summary Create review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body models.CreateReviewRequest true "Review"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Name, comment and a rating from 1 to 5 are required", Error: err.Error()})
		return
	}

	review := &models.Review{
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := ctrl.reviewRepo.CreateReview(c.Request.Context(), review); err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to save review", Error: err.Error()})
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Thanks for your review!", Data: review})
}

// @Summary Delete review
// @Tags Admin - Reviews
// @Security BearerAuth
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/reviews/{id} [delete]
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid review ID"})
		return
	}

	if err := ctrl.reviewRepo.DeleteReview(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Review not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to delete review", Error: err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Review deleted", Data: gin.H{"id": id}})
}
