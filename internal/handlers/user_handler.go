package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodfast/foodfast-backend/internal/httperr"
	"github.com/foodfast/foodfast-backend/internal/httpresp"
	"github.com/foodfast/foodfast-backend/internal/models"
	ucuser "github.com/foodfast/foodfast-backend/internal/usecase/user"
)

type UserHandler struct {
	svc *ucuser.Service
}

func NewUserHandler(svc *ucuser.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Fullname *string `json:"fullname,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		Fullname: req.Fullname,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    req.Phone,
		Password: req.Password,
		Role:     role,
	}

	created, err := h.svc.Create(c.Request.Context(), &user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_already_exists", "a user with that email already exists")
			return
		}
		httperr.Internal(c, "failed_to_create_user", err.Error())
		return
	}

	httpresp.Created(c, created)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_users", err.Error())
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", err.Error())
		return
	}

	user, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_user", err.Error())
		return
	}
	if user == nil {
		httperr.NotFound(c, httperr.CodeUserNotFound, "no user with that id")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	user, err := h.svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "failed_to_get_user", err.Error())
		return
	}
	if user == nil {
		httperr.NotFound(c, httperr.CodeUserNotFound, "no user with that email")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", err.Error())
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	input := ucuser.UpdateInput{
		Fullname: req.Fullname,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		input.Role = &role
	}

	updated, err := h.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeUserNotFound) {
			httperr.NotFound(c, httperr.CodeUserNotFound, "no user with that id")
			return
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "email_already_exists", "a user with that email already exists")
			return
		}
		httperr.Internal(c, "failed_to_update_user", err.Error())
		return
	}

	httpresp.OK(c, updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", err.Error())
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_user", err.Error())
		return
	}

	c.Status(204)
}
