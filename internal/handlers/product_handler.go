package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"store-backend/internal/cache"
	"store-backend/internal/catalog"
	"store-backend/internal/models"
	"store-backend/internal/paging"
)

// ProductHandler serves the catalog read endpoints and the product
// CRUD. Read responses are cached by query key; every mutation
// invalidates the whole products namespace.
type ProductHandler struct {
	svc   *catalog.Service
	cache *cache.Cache
	log   *logrus.Logger
}

func NewProductHandler(svc *catalog.Service, cache *cache.Cache, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, cache: cache, log: log}
}

func listMessage(n int) string {
	if n == 0 {
		return "no products found"
	}
	return "success"
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	page := paging.ParseParam(c.Query("page"))
	limit := paging.ParseParam(c.Query("limit"))
	all, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))

	cacheKey := fmt.Sprintf("products:list:p%d_l%d_all%v", page, limit, all)
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.svc.List(c.Request.Context(), page, limit, all)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	response := gin.H{
		"message":     listMessage(len(result.Items)),
		"data":        result.Items,
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
	}
	h.cache.Set(cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// GET /products/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	cacheKey := "products:id:" + c.Param("id")
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	data, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	// An empty result means the product does not exist.
	if len(data) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
		return
	}

	response := gin.H{"message": "success", "data": data}
	h.cache.Set(cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// GET /products/category/:categoryName
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	page := paging.ParseParam(c.Query("page"))
	limit := paging.ParseParam(c.Query("limit"))
	name := c.Param("categoryName")

	cacheKey := fmt.Sprintf("products:category:%s_p%d_l%d", name, page, limit)
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.svc.ByCategory(c.Request.Context(), name, page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	response := gin.H{
		"message":     listMessage(len(result.Items)),
		"data":        result.Items,
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
	}
	h.cache.Set(cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// GET /products/label/:label
func (h *ProductHandler) GetProductsByLabel(c *gin.Context) {
	cacheKey := "products:label:" + c.Param("label")
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	data, err := h.svc.ByLabel(c.Request.Context(), c.Param("label"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	response := gin.H{"message": listMessage(len(data)), "data": data}
	h.cache.Set(cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// GET /products/search?q=&page=&limit=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	page := paging.ParseParam(c.Query("page"))
	limit := paging.ParseParam(c.Query("limit"))

	cacheKey := fmt.Sprintf("products:search:%s_p%d_l%d", c.Query("q"), page, limit)
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.svc.Search(c.Request.Context(), c.Query("q"), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	message := "success"
	if len(result.Items) == 0 {
		message = "no products found that match your search"
	}
	response := gin.H{
		"message":     message,
		"data":        result.Items,
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
	}
	h.cache.Set(cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// GET /products/filter?title=&price=&page=&limit=
func (h *ProductHandler) FilterProducts(c *gin.Context) {
	page := paging.ParseParam(c.Query("page"))
	limit := paging.ParseParam(c.Query("limit"))

	cacheKey := fmt.Sprintf("products:filter:t%s_pr%s_p%d_l%d", c.Query("title"), c.Query("price"), page, limit)
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.svc.Filter(c.Request.Context(), c.Query("title"), c.Query("price"), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	message := "success"
	if len(result.Items) == 0 {
		message = "no products found that match your filters"
	}
	response := gin.H{
		"message":     message,
		"data":        result.Items,
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
	}
	h.cache.Set(cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// GET /products/least-ordered
func (h *ProductHandler) GetLeastOrdered(c *gin.Context) {
	const cacheKey = "products:least-ordered"
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	data, err := h.svc.LeastOrdered(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	message := "success"
	if len(data) == 0 {
		message = "no least ordered products found"
	}
	response := gin.H{"message": message, "data": data}
	h.cache.Set(cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// GET /products/best-selling
func (h *ProductHandler) GetBestSelling(c *gin.Context) {
	const cacheKey = "products:best-selling"
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	data, err := h.svc.BestSelling(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	message := "success"
	if len(data) == 0 {
		message = "no best selling products found"
	}
	response := gin.H{"message": message, "data": data}
	h.cache.Set(cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.svc.Create(c.Request.Context(), &product); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.cache.DeleteByPrefix("products:")
	c.JSON(http.StatusOK, gin.H{"message": "product added successfully", "data": product})
}

// PATCH /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.svc.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.cache.DeleteByPrefix("products:")
	c.JSON(http.StatusOK, gin.H{"message": "product updated successfully"})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.cache.DeleteByPrefix("products:")
	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}
