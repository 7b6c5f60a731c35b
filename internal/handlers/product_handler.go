package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodfast/foodfast-backend/internal/httperr"
	"github.com/foodfast/foodfast-backend/internal/httpresp"
	"github.com/foodfast/foodfast-backend/internal/models"
	ucproduct "github.com/foodfast/foodfast-backend/internal/usecase/product"
)

type ProductHandler struct {
	svc *ucproduct.Service
}

func NewProductHandler(svc *ucproduct.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Quantity float64 `json:"quantity"`
}

type UpdateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Quantity float64 `json:"quantity"`
}

// --------- Handlers ---------

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	product := models.Product{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	}

	created, err := h.svc.Create(c.Request.Context(), &product)
	if err != nil {
		httperr.Internal(c, "failed_to_create_product", err.Error())
		return
	}

	httpresp.Created(c, created)
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_products", err.Error())
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", err.Error())
		return
	}

	product, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_product", err.Error())
		return
	}
	if product == nil {
		httperr.NotFound(c, httperr.CodeProductNotFound, "no product with that id")
		return
	}

	httpresp.OK(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", err.Error())
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	data := models.Product{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	}

	updated, err := h.svc.Update(c.Request.Context(), id, &data)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeProductNotFound) {
			httperr.NotFound(c, httperr.CodeProductNotFound, "no product with that id")
			return
		}
		httperr.Internal(c, "failed_to_update_product", err.Error())
		return
	}

	httpresp.OK(c, updated)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", err.Error())
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_product", err.Error())
		return
	}

	c.Status(204)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
