package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	infraRepo "github.com/foodfast/foodfast-backend/internal/infra/repository"
	"github.com/foodfast/foodfast-backend/internal/models"
	"github.com/foodfast/foodfast-backend/internal/testmetrics"
	ucproduct "github.com/foodfast/foodfast-backend/internal/usecase/product"
)

func newProductRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	svc := ucproduct.NewService(infraRepo.NewProductGormRepository(db))
	handler := NewProductHandler(svc)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/products", handler.Create)
	api.GET("/products", handler.List)
	api.GET("/products/:id", handler.Get)
	api.PATCH("/products/:id", handler.Update)
	api.DELETE("/products/:id", handler.Delete)

	return r, db
}

func TestProductCreateEndpoint(t *testing.T) {
	testmetrics.Watch(t)

	r, _ := newProductRouter(t)

	body := `{"name":"Burger","price":5.99,"quantity":100}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Burger", created.Name)
	assert.Equal(t, 5.99, created.Price)
}

func TestProductCreateEndpointRejectsMissingName(t *testing.T) {
	testmetrics.Watch(t)

	r, _ := newProductRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"price":5.99}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductGetEndpointReturns404OnMiss(t *testing.T) {
	testmetrics.Watch(t)

	r, _ := newProductRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductUpdateEndpointReturns404OnMiss(t *testing.T) {
	testmetrics.Watch(t)

	r, _ := newProductRouter(t)

	body := `{"name":"Ghost","price":1.00}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/products/999", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductListEndpoint(t *testing.T) {
	testmetrics.Watch(t)

	r, db := newProductRouter(t)

	require.NoError(t, db.Create(&models.Product{Name: "Burger", Price: 5.99, Quantity: 100}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Pizza", Price: 8.99, Quantity: 50}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []models.Product `json:"data"`
		Total int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Data, 2)
}

func TestProductDeleteEndpoint(t *testing.T) {
	testmetrics.Watch(t)

	r, db := newProductRouter(t)

	p := models.Product{Name: "Burger", Price: 5.99}
	require.NoError(t, db.Create(&p).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
