package controllers

import (
	"errors"
	"strconv"

	"verduleria/models"
	"verduleria/repositories"
	"verduleria/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
	cartStore   *repositories.CartStore
}

func NewCartController(cartStore *repositories.CartStore) *CartController {
	return &CartController{
		cartService: services.NewCartService(),
		cartStore:   cartStore,
	}
}

// @Summary Get cart
// @Description Current session cart with per-line and overall totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	token := c.GetString("cart_token")

	cart, err := ctrl.cartStore.Get(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to load cart", Error: err.Error()})
		return
	}

	total, err := ctrl.cartService.Total(cart)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to price cart", Error: err.Error()})
		return
	}

	lines := make([]gin.H, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lineTotal, err := services.PriceLine(line.Quantity, line.UnitPrice, line.PromoQty, line.PromoPrice)
		if err != nil {
			c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to price cart", Error: err.Error()})
			return
		}
		lines = append(lines, gin.H{
			"name":       line.Name,
			"unit":       line.Unit,
			"quantity":   line.Quantity,
			"unit_price": line.UnitPrice,
			"line_total": lineTotal.StringFixed(2),
		})
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data: gin.H{
			"lines": lines,
			"count": len(cart.Lines),
			"total": total.StringFixed(2),
		},
	})
}

// @Summary Add item to cart
// @Description Add a line; an existing (name, unit) line accumulates quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Cart line"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	token := c.GetString("cart_token")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid cart item", Error: err.Error()})
		return
	}

	cart, err := ctrl.cartStore.Get(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to load cart", Error: err.Error()})
		return
	}

	line := models.CartLine{
		Name:       req.Name,
		Unit:       req.Unit,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		PromoQty:   req.PromoQty,
		PromoPrice: req.PromoPrice,
	}

	cart, count, total, err := ctrl.cartService.Add(cart, line)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid cart item", Error: err.Error()})
		return
	}

	if err := ctrl.cartStore.Save(c.Request.Context(), token, cart); err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to save cart", Error: err.Error()})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Item added",
		Data:    gin.H{"count": count, "total": total.StringFixed(2)},
	})
}

// @Summary Remove cart line
// @Description Remove the line at the given position
// @Tags Cart
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{index} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	token := c.GetString("cart_token")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid index"})
		return
	}

	cart, err := ctrl.cartStore.Get(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to load cart", Error: err.Error()})
		return
	}

	cart, err = ctrl.cartService.Remove(cart, index)
	if err != nil {
		if errors.Is(err, models.ErrIndexOutOfRange) {
			c.JSON(400, models.ErrorResponse{Success: false, Message: "Cart index out of range"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update cart", Error: err.Error()})
		return
	}

	if err := ctrl.cartStore.Save(c.Request.Context(), token, cart); err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to save cart", Error: err.Error()})
		return
	}

	total, err := ctrl.cartService.Total(cart)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to price cart", Error: err.Error()})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Item removed",
		Data:    gin.H{"count": len(cart.Lines), "total": total.StringFixed(2)},
	})
}
