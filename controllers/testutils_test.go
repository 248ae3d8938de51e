package controllers

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"productservice/models"

	"github.com/gin-gonic/gin"
)

// memStore is an in-memory ProductStore used to exercise the
// controllers without a database.
type memStore struct {
	products map[int]*models.Product
	order    []int
	nextID   int
	err      error
}

func newMemStore() *memStore {
	return &memStore{
		products: map[int]*models.Product{},
		nextID:   1,
	}
}

func applyFields(p *models.Product, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "name":
			p.Name = value.(string)
		case "price":
			p.Price = value.(float64)
		case "description":
			p.Description = value.(string)
		case "image":
			p.Image = value.(string)
		case "category":
			p.Category = value.(string)
		case "color":
			p.Color = value.(string)
		}
	}
}

func (s *memStore) Create(ctx context.Context, fields map[string]interface{}) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := &models.Product{ID: s.nextID, CreatedAt: time.Now()}
	s.nextID++
	applyFields(p, fields)
	s.products[p.ID] = p
	s.order = append(s.order, p.ID)
	return p, nil
}

func (s *memStore) All(ctx context.Context) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	products := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, *s.products[id])
	}
	return products, nil
}

func (s *memStore) ByID(ctx context.Context, id int) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return p, nil
}

func (s *memStore) Update(ctx context.Context, id int, fields map[string]interface{}) (*models.Product, error) {
	p, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyFields(p, fields)
	return p, nil
}

func (s *memStore) Delete(ctx context.Context, id int) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.products[id]; !ok {
		return models.ErrProductNotFound
	}
	delete(s.products, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// testRouter registers both surfaces without the auth middleware; the
// capability check is covered separately in middleware tests.
func testRouter(store ProductStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	products := NewProductController(store)
	v1 := r.Group("/api/v1/products")
	{
		v1.POST("", products.CreateProduct)
		v1.GET("", products.GetProducts)
		v1.GET("/:id", products.GetProduct)
		v1.PUT("/:id", products.UpdateProduct)
		v1.DELETE("/:id", products.DeleteProduct)
	}

	angular := NewAngularProductController(store)
	ap := r.Group("/api/angularProduct")
	{
		ap.GET("/health", angular.Health)
		ap.POST("/add", angular.AddProduct)
		ap.GET("/get", angular.GetProducts)
		ap.GET("/get/:id", angular.GetProduct)
		ap.PATCH("/update", angular.UpdateProduct)
		ap.DELETE("/delete", angular.DeleteProduct)
	}

	return r
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
