package productcontroller

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
	"github.com/theafzalhussain/velour-backend/models"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func productRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", GetProducts(db))
	r.POST("/api/products", CreateProduct(db))
	r.GET("/api/products/export", ExportProductsToExcel(db))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct(t *testing.T) {
	r := productRouter(testDB(t))

	w := postJSON(r, "/api/products", `{
		"name": "Velvet Blazer",
		"price": 149.5,
		"description": "Premium velvet",
		"imageUrl": "https://cdn.example.com/blazer.jpg",
		"category": "outerwear"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Velvet Blazer", created.Name)
	assert.Equal(t, 149.5, created.Price)
	assert.Equal(t, "https://cdn.example.com/blazer.jpg", created.ImageURL)
	assert.True(t, created.InStock, "inStock defaults to true")
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateProductMissingRequiredFields(t *testing.T) {
	r := productRouter(testDB(t))

	for _, body := range []string{
		`{"price": 10, "imageUrl": "https://x/y.jpg"}`,
		`{"name": "No Price", "imageUrl": "https://x/y.jpg"}`,
		`{"name": "No Image", "price": 10}`,
	} {
		w := postJSON(r, "/api/products", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestCreateProductExplicitOutOfStock(t *testing.T) {
	r := productRouter(testDB(t))

	w := postJSON(r, "/api/products",
		`{"name":"Sold Out","price":10,"imageUrl":"https://x/y.jpg","inStock":false}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.InStock)
}

func TestGetProducts(t *testing.T) {
	db := testDB(t)
	r := productRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	require.Equal(t, http.StatusCreated,
		postJSON(r, "/api/products", `{"name":"A","price":1,"imageUrl":"https://x/a.jpg"}`).Code)
	require.Equal(t, http.StatusCreated,
		postJSON(r, "/api/products", `{"name":"B","price":2,"imageUrl":"https://x/b.jpg"}`).Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}

func TestExportProducts(t *testing.T) {
	db := testDB(t)
	r := productRouter(db)

	require.Equal(t, http.StatusCreated,
		postJSON(r, "/api/products", `{"name":"A","price":1,"imageUrl":"https://x/a.jpg"}`).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/export", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}
