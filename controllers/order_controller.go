package controllers

import (
	"errors"
	"log"
	"strconv"

	"verduleria/config"
	"verduleria/models"
	"verduleria/repositories"
	"verduleria/services"
	"verduleria/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
	orderRepo    *repositories.OrderRepository
	cartStore    *repositories.CartStore
}

func NewOrderController(cartStore *repositories.CartStore) *OrderController {
	orderRepo := repositories.NewOrderRepository()
	return &OrderController{
		orderService: services.NewOrderService(orderRepo),
		orderRepo:    orderRepo,
		cartStore:    cartStore,
	}
}

// @Summary Checkout
// @Description Confirm the session cart as an order and get the WhatsApp link for the owner
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CheckoutRequest true "Customer and delivery details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	token := c.GetString("cart_token")

	var req models.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid order data", Error: err.Error()})
		return
	}
	if req.Place == models.PlaceDelivery && req.DeliveryAddress == "" {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Delivery address is required"})
		return
	}

	cart, err := ctrl.cartStore.Get(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to load cart", Error: err.Error()})
		return
	}

	order, err := ctrl.orderService.CreateOrder(c.Request.Context(), req, cart)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			c.JSON(400, models.ErrorResponse{Success: false, Message: "Your cart is empty"})
		case errors.Is(err, models.ErrInvalidQuantity):
			c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid quantity in cart"})
		case errors.Is(err, models.ErrAllocationExhausted):
			c.JSON(503, models.ErrorResponse{Success: false, Message: "Could not assign an order number, please retry"})
		default:
			c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to create order", Error: err.Error()})
		}
		return
	}

	// The order is safely persisted; an unclearable cart should not fail the
	// checkout response.
	if err := ctrl.cartStore.Clear(c.Request.Context(), token); err != nil {
		log.Println("Failed to clear cart after checkout:", err)
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Order confirmed",
		Data: gin.H{
			"order":        order,
			"whatsapp_url": utils.BuildWhatsAppURL(config.AppConfig.OwnerWhatsApp, order),
		},
	})
}

// @Summary Get all orders
// @Description Recent orders for the admin panel
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} models.Response
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	orders, err := ctrl.orderRepo.ListOrders(c.Request.Context(), status, limit)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to get orders", Error: err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Orders retrieved", Data: orders})
}

// @Summary Get order by ID
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid order ID"})
		return
	}

	order, err := ctrl.orderRepo.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Order not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to get order", Error: err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order retrieved", Data: order})
}

// @Summary Mark order fulfilled
// @Description Move a pending order to fulfilled; there is no way back
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid order ID"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid status", Error: err.Error()})
		return
	}

	order, err := ctrl.orderService.MarkFulfilled(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Order not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update order status", Error: err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order status updated", Data: order})
}

// @Summary Delete order
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid order ID"})
		return
	}

	if err := ctrl.orderRepo.DeleteOrder(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Order not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to delete order", Error: err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order deleted", Data: gin.H{"id": id}})
}

// @Summary Delete all orders
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/orders [delete]
func (ctrl *OrderController) DeleteAllOrders(c *gin.Context) {
	if err := ctrl.orderRepo.DeleteAllOrders(c.Request.Context()); err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to delete orders", Error: err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "All orders deleted"})
}
