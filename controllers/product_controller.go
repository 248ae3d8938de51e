package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"productservice/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductStore is the record store behind both controllers. Implemented
// by models.ProductsRepository; tests swap in an in-memory store.
type ProductStore interface {
	Create(ctx context.Context, fields map[string]interface{}) (*models.Product, error)
	All(ctx context.Context) ([]models.Product, error)
	ByID(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, id int, fields map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id int) error
}

// ProductController serves the versioned /api/v1/products surface with
// the core field set {id, name, price, description}.
type ProductController struct {
	store ProductStore
}

func NewProductController(store ProductStore) *ProductController {
	return &ProductController{store: store}
}

func (ctl *ProductController) CreateProduct(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	fields, err := models.ValidateCreate(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := ctl.store.Create(c.Request.Context(), fields)
	if err != nil {
		zap.S().Errorw("create product failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product_id": p.ID})
}

func (ctl *ProductController) GetProducts(c *gin.Context) {
	products, err := ctl.store.All(c.Request.Context())
	if err != nil {
		zap.S().Errorw("list products failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	views := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		views = append(views, products[i].CoreView())
	}
	c.JSON(http.StatusOK, views)
}

func (ctl *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := ctl.store.ByID(c.Request.Context(), id)
	if err != nil {
		ctl.fail(c, id, err)
		return
	}

	c.JSON(http.StatusOK, p.CoreView())
}

func (ctl *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	fields, err := models.ValidatePartialUpdate(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := ctl.store.Update(c.Request.Context(), id, fields)
	if err != nil {
		ctl.fail(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product_id": p.ID})
}

func (ctl *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.store.Delete(c.Request.Context(), id); err != nil {
		ctl.fail(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// fail maps store errors for this surface: JSON 404 with the id in the
// message, anything else a generic 500.
func (ctl *ProductController) fail(c *gin.Context, id int, err error) {
	if errors.Is(err, models.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product with id %d not found", id)})
		return
	}
	zap.S().Errorw("product store error", "id", id, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return id, true
}
