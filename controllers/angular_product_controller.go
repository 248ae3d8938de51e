package controllers

import (
	"errors"
	"net/http"

	"productservice/models"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// AngularProductController serves the legacy /api/angularProduct
// surface. Same rows as the core surface, but the full field set and
// the external "_id" identifier key.
type AngularProductController struct {
	store ProductStore
}

func NewAngularProductController(store ProductStore) *AngularProductController {
	return &AngularProductController{store: store}
}

func (ctl *AngularProductController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "product-service"})
}

func (ctl *AngularProductController) AddProduct(c *gin.Context) {
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
		zap.S().Errorw("add product failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusCreated, p.ExtendedView())
}

func (ctl *AngularProductController) GetProducts(c *gin.Context) {
	products, err := ctl.store.All(c.Request.Context())
	if err != nil {
		zap.S().Errorw("list products failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	views := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		views = append(views, products[i].ExtendedView())
	}
	c.JSON(http.StatusOK, views)
}

func (ctl *AngularProductController) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := ctl.store.ByID(c.Request.Context(), id)
	if err != nil {
		ctl.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, p.ExtendedView())
}

// UpdateProduct handles PATCH /update with a nested payload:
// {"productId": N, "updatedData": {...partial fields...}}. The nested
// object is flattened into the same partial-update path the core
// surface uses, so absent keys stay untouched.
func (ctl *AngularProductController) UpdateProduct(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	id, ok := ctl.productID(c, payload)
	if !ok {
		return
	}

	updated := map[string]interface{}{}
	if raw, present := payload["updatedData"]; present {
		updated, ok = raw.(map[string]interface{})
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "updatedData must be an object"})
			return
		}
	}

	fields, err := models.ValidatePartialUpdate(updated)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := ctl.store.Update(c.Request.Context(), id, fields)
	if err != nil {
		ctl.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "_id": p.ID})
}

func (ctl *AngularProductController) DeleteProduct(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	id, ok := ctl.productID(c, payload)
	if !ok {
		return
	}

	if err := ctl.store.Delete(c.Request.Context(), id); err != nil {
		ctl.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// productID extracts the external identifier. Angular clients send it
// as either a number or a numeric string.
func (ctl *AngularProductController) productID(c *gin.Context, payload map[string]interface{}) (int, bool) {
	raw, present := payload["productId"]
	if !present || raw == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return 0, false
	}
	switch raw.(type) {
	case bool, []interface{}, map[string]interface{}:
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId must be a number"})
		return 0, false
	}
	id, err := cast.ToIntE(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId must be a number"})
		return 0, false
	}
	return id, true
}

func (ctl *AngularProductController) fail(c *gin.Context, err error) {
	if errors.Is(err, models.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	zap.S().Errorw("product store error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
}
