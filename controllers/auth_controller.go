package controllers

import (
	"verduleria/models"
	"verduleria/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

// @Summary Admin login
// @Description Exchange the shop owner's PIN for an admin token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Admin PIN"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "PIN is required", Error: err.Error()})
		return
	}

	ok, err := utils.VerifyAdminPin(req.PIN)
	if err != nil || !ok {
		c.JSON(401, models.ErrorResponse{Success: false, Message: "Incorrect PIN"})
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to generate token"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    models.LoginResponse{Token: token},
	})
}
