package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"verduleria/models"
	"verduleria/services"
	"verduleria/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{
		productService: services.NewProductService(),
	}
}

func productCacheKey(search, category string) string {
	return fmt.Sprintf("products_list_q%s_c%s", search, category)
}

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Get catalog
// @Description List products, optionally filtered by name search and category
// @Tags Products
// @Produce json
// @Param q query string false "Search by name"
// @Param category query string false "Filter by category"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	search := c.Query("q")
	category := c.Query("category")
	ctx := c.Request.Context()

	cacheKey := productCacheKey(search, category)
	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.productService.GetAllProducts(ctx, search, category)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to get products", Error: err.Error()})
		return
	}

	categories, err := ctrl.productService.GetCategories(ctx)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to get categories", Error: err.Error()})
		return
	}

	response := models.Response{
		Success: true,
		Message: "Products retrieved",
		Data:    gin.H{"products": products, "categories": categories},
	}

	if models.RedisClient != nil {
		if jsonData, err := json.Marshal(response); err == nil {
			models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		} else {
			log.Println("Failed to cache product list:", err)
		}
	}

	c.JSON(200, response)
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	product, err := ctrl.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

// uploadProductImage stores the attached image, preferring Cloudinary when it
// is configured and falling back to the local uploads directory.
func uploadProductImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("image_file")
	if err != nil {
		return "", nil
	}

	if cld, err := models.NewCloudinaryService(); err == nil {
		if err := cld.ValidateImageFile(fileHeader); err != nil {
			return "", err
		}
		file, err := fileHeader.Open()
		if err != nil {
			return "", err
		}
		defer file.Close()

		url, _, err := cld.UploadImage(c.Request.Context(), file, fileHeader.Filename, "products")
		return url, err
	}

	return utils.UploadFile(c, fileHeader, "products")
}

// @Summary Create product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param category formData string true "Category"
// @Param unit formData string true "Unit (kg or unit)"
// @Param price formData number true "Unit price"
// @Param promo_qty formData number false "Promo threshold quantity"
// @Param promo_price formData number false "Promo bundle price"
// @Param image_file formData file false "Product image"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product data", Error: err.Error()})
		return
	}

	imagePath, err := uploadProductImage(c)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Image upload failed", Error: err.Error()})
		return
	}
	if imagePath != "" {
		req.Image = imagePath
	}

	product, err := ctrl.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Failed to create product", Error: err.Error()})
		return
	}

	invalidateProductCache()
	log.Printf("Product created: %s (%s)", product.Name, product.Category)

	c.JSON(201, models.Response{Success: true, Message: "Product created", Data: product})
}

// @Summary Update product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product data", Error: err.Error()})
		return
	}

	imagePath, err := uploadProductImage(c)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Image upload failed", Error: err.Error()})
		return
	}
	if imagePath != "" {
		req.Image = imagePath
	}

	product, err := ctrl.productService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		if err == models.ErrNotFound {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
			return
		}
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Failed to update product", Error: err.Error()})
		return
	}

	invalidateProductCache()

	c.JSON(200, models.Response{Success: true, Message: "Product updated", Data: product})
}

// @Summary Delete product
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	if err := ctrl.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		if err == models.ErrNotFound {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to delete product", Error: err.Error()})
		return
	}

	invalidateProductCache()

	c.JSON(200, models.Response{Success: true, Message: "Product deleted", Data: gin.H{"id": id}})
}
