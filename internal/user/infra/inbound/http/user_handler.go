package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
	"github.com/davicafu/blogolab/internal/shared/infra/platform/query"
	"github.com/davicafu/blogolab/internal/user/application"
	"github.com/davicafu/blogolab/internal/user/domain"
	"github.com/davicafu/blogolab/pkg/utils"
)

// UserHandler encapsula los endpoints HTTP relacionados con User
type UserHandler struct {
	service *application.UserService
}

// NewUserHandler crea un nuevo UserHandler
func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ---------------- Handlers ----------------

// CreateUser endpoint POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3,max=32"`
		Email    string `json:"email" binding:"required,email"`
		Nickname string `json:"nickname" binding:"max=64"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.Username, req.Email, req.Nickname)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			utils.SendError(c, http.StatusConflict, "user already exists")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser endpoint GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendBadRequest(c, "invalid user id")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.SendNotFound(c, "user not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser endpoint PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendBadRequest(c, "invalid user id")
		return
	}

	var req struct {
		Email    *string `json:"email,omitempty"`
		Nickname *string `json:"nickname,omitempty"`
		Status   *int    `json:"status,omitempty"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.SendNotFound(c, "user not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Nickname != nil {
		user.Nickname = *req.Nickname
	}
	if req.Status != nil {
		user.Status = domain.UserStatus(*req.Status)
	}

	if err := h.service.UpdateUser(c.Request.Context(), user); err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser endpoint DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendBadRequest(c, "invalid user id")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.SendNotFound(c, "user not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUsers endpoint GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var criterias []sharedDomain.Criteria

	// --- Filtros desde query params ---
	if username := c.Query("username"); username != "" {
		criterias = append(criterias, domain.UsernameCriteria{Username: username})
	}

	if email := c.Query("email"); email != "" {
		criterias = append(criterias, domain.EmailCriteria{Email: email})
	}

	if statusStr := c.Query("status"); statusStr != "" {
		v, err := strconv.Atoi(statusStr)
		if err != nil {
			utils.SendBadRequest(c, "invalid status")
			return
		}
		criterias = append(criterias, domain.StatusCriteria{Status: domain.UserStatus(v)})
	}

	if nickname := c.Query("nickname"); nickname != "" {
		criterias = append(criterias, domain.NicknameLikeCriteria{Nickname: nickname})
	}

	criteria := sharedDomain.And(criterias...)

	// --- Paginación y orden ---
	spec := query.Spec{
		Page:     query.DefaultPage,
		PageSize: query.DefaultPageSize,
	}

	if pageStr := c.Query("page"); pageStr != "" {
		v, err := strconv.Atoi(pageStr)
		if err != nil {
			utils.SendBadRequest(c, "invalid page")
			return
		}
		spec.Page = v
	}

	if sizeStr := c.Query("page_size"); sizeStr != "" {
		v, err := strconv.Atoi(sizeStr)
		if err != nil {
			utils.SendBadRequest(c, "invalid page_size")
			return
		}
		spec.PageSize = v
	}

	if sortField := c.Query("sort_field"); sortField != "" {
		spec.Sort.Field = sortField
		spec.Sort.Desc = true // descendente por defecto
		if sortDesc := c.Query("sort_desc"); sortDesc != "" {
			v, err := strconv.ParseBool(sortDesc)
			if err != nil {
				utils.SendBadRequest(c, "invalid sort_desc")
				return
			}
			spec.Sort.Desc = v
		}
	}

	result, err := h.service.ListUsers(c.Request.Context(), criteria, spec)
	if err != nil {
		if errors.Is(err, query.ErrInvalidQuery) {
			utils.SendBadRequest(c, err.Error())
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	utils.SendPage(c, result.Items, result.Total, result.Page, result.PageSize, result.TotalPages)
}
