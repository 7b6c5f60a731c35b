package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodfast/foodfast-backend/internal/httperr"
	"github.com/foodfast/foodfast-backend/internal/httpresp"
	"github.com/foodfast/foodfast-backend/internal/models"
	ucrestaurant "github.com/foodfast/foodfast-backend/internal/usecase/restaurant"
)

type RestaurantHandler struct {
	svc *ucrestaurant.Service
}

func NewRestaurantHandler(svc *ucrestaurant.Service) *RestaurantHandler {
	return &RestaurantHandler{svc: svc}
}

// --------- Requests ---------

type CreateRestaurantRequest struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address"`
	OwnerEmail string `json:"owner_email" binding:"required,email"`
}

// --------- Handlers ---------

func (h *RestaurantHandler) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	restaurant := models.Restaurant{
		Name:       req.Name,
		Address:    req.Address,
		OwnerEmail: strings.ToLower(strings.TrimSpace(req.OwnerEmail)),
	}

	created, err := h.svc.Create(c.Request.Context(), &restaurant)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeOwnerNotFound):
			httperr.BadRequest(c, httperr.CodeOwnerNotFound, "no user with that email")
		case httperr.IsBusiness(err, httperr.CodeOwnerInvalidRole):
			httperr.BadRequest(c, httperr.CodeOwnerInvalidRole, "owner must have the RESTAURANT_OWNER role")
		default:
			httperr.Internal(c, "failed_to_create_restaurant", err.Error())
		}
		return
	}

	httpresp.Created(c, created)
}

func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_restaurants", err.Error())
		return
	}

	httpresp.List(c, restaurants)
}

func (h *RestaurantHandler) GetByOwner(c *gin.Context) {
	ownerID, err := parseID(c.Param("ownerId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", err.Error())
		return
	}

	restaurant, err := h.svc.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeRestaurantNotFound) {
			httperr.NotFound(c, httperr.CodeRestaurantNotFound, "no restaurant for that owner")
			return
		}
		httperr.Internal(c, "failed_to_get_restaurant", err.Error())
		return
	}

	httpresp.OK(c, restaurant)
}

func (h *RestaurantHandler) GetByOwnerEmail(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	restaurant, err := h.svc.GetByOwnerEmail(c.Request.Context(), email)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeRestaurantNotFound) {
			httperr.NotFound(c, httperr.CodeRestaurantNotFound, "no restaurant for that owner email")
			return
		}
		httperr.Internal(c, "failed_to_get_restaurant", err.Error())
		return
	}

	httpresp.OK(c, restaurant)
}
