package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/blogolab/internal/post/application"
	"github.com/davicafu/blogolab/internal/post/domain"
	sharedDomain "github.com/davicafu/blogolab/internal/shared/domain"
	"github.com/davicafu/blogolab/internal/shared/infra/platform/query"
	"github.com/davicafu/blogolab/pkg/utils"
)

// PostHandler encapsula los endpoints HTTP relacionados con Post
type PostHandler struct {
	service *application.PostService
}

// NewPostHandler crea un nuevo PostHandler
func NewPostHandler(service *application.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// PostSummary es la proyección reducida para los listados:
// omite el cuerpo completo del artículo.
type PostSummary struct {
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	Summary    string            `json:"summary"`
	CategoryID int64             `json:"category_id"`
	AuthorID   int64             `json:"author_id"`
	Status     domain.PostStatus `json:"status"`
	Top        bool              `json:"top"`
	ViewCount  int64             `json:"view_count"`
	CreatedAt  time.Time         `json:"created_at"`
}

func toSummary(p *domain.Post) PostSummary {
	return PostSummary{
		ID:         p.ID,
		Title:      p.Title,
		Summary:    p.Summary,
		CategoryID: p.CategoryID,
		AuthorID:   p.AuthorID,
		Status:     p.Status,
		Top:        p.Top,
		ViewCount:  p.ViewCount,
		CreatedAt:  p.CreatedAt,
	}
}

func toSummaries(posts []*domain.Post) []PostSummary {
	summaries := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, toSummary(p))
	}
	return summaries
}

// ---------------- Handlers ----------------

// CreatePost endpoint POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req struct {
		Title      string `json:"title" binding:"required,max=200"`
		Summary    string `json:"summary" binding:"max=500"`
		Content    string `json:"content" binding:"required"`
		CategoryID int64  `json:"category_id" binding:"required,min=1"`
		AuthorID   int64  `json:"author_id" binding:"required,min=1"`
		Top        bool   `json:"top"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), req.Title, req.Summary, req.Content, req.CategoryID, req.AuthorID, req.Top)
	if err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost endpoint GET /posts/:id
// Cada consulta del detalle incrementa el contador de visitas.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendBadRequest(c, "invalid post id")
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			utils.SendNotFound(c, "post not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost endpoint PUT /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendBadRequest(c, "invalid post id")
		return
	}

	var req struct {
		Title      *string `json:"title,omitempty"`
		Summary    *string `json:"summary,omitempty"`
		Content    *string `json:"content,omitempty"`
		CategoryID *int64  `json:"category_id,omitempty"`
		Top        *bool   `json:"top,omitempty"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	// Lectura interna: una modificación no cuenta como visita.
	post, err := h.service.FindPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			utils.SendNotFound(c, "post not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Summary != nil {
		post.Summary = *req.Summary
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.CategoryID != nil {
		post.CategoryID = *req.CategoryID
	}
	if req.Top != nil {
		post.Top = *req.Top
	}

	if err := h.service.UpdatePost(c.Request.Context(), post); err != nil {
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, post)
}

// WithdrawPost endpoint DELETE /posts/:id
// Borrado lógico: devuelve el post ya retirado, que sigue siendo consultable.
func (h *PostHandler) WithdrawPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendBadRequest(c, "invalid post id")
		return
	}

	post, err := h.service.WithdrawPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			utils.SendNotFound(c, "post not found")
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts endpoint GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	var criterias []sharedDomain.Criteria

	// --- Filtros desde query params ---
	if categoryStr := c.Query("category_id"); categoryStr != "" {
		v, err := strconv.ParseInt(categoryStr, 10, 64)
		if err != nil {
			utils.SendBadRequest(c, "invalid category_id")
			return
		}
		criterias = append(criterias, domain.CategoryCriteria{CategoryID: v})
	}

	if authorStr := c.Query("author_id"); authorStr != "" {
		v, err := strconv.ParseInt(authorStr, 10, 64)
		if err != nil {
			utils.SendBadRequest(c, "invalid author_id")
			return
		}
		criterias = append(criterias, domain.AuthorCriteria{AuthorID: v})
	}

	if statusStr := c.Query("status"); statusStr != "" {
		v, err := strconv.Atoi(statusStr)
		if err != nil {
			utils.SendBadRequest(c, "invalid status")
			return
		}
		criterias = append(criterias, domain.StatusCriteria{Status: domain.PostStatus(v)})
	}

	if topStr := c.Query("top"); topStr != "" {
		v, err := strconv.ParseBool(topStr)
		if err != nil {
			utils.SendBadRequest(c, "invalid top flag")
			return
		}
		criterias = append(criterias, domain.TopCriteria{Top: v})
	}

	if title := c.Query("title"); title != "" {
		criterias = append(criterias, domain.TitleLikeCriteria{Title: title})
	}

	criteria := sharedDomain.And(criterias...)

	spec, ok := parseSpec(c)
	if !ok {
		return
	}

	result, err := h.service.ListPosts(c.Request.Context(), criteria, spec)
	if err != nil {
		if errors.Is(err, query.ErrInvalidQuery) {
			utils.SendBadRequest(c, err.Error())
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	utils.SendPage(c, toSummaries(result.Items), result.Total, result.Page, result.PageSize, result.TotalPages)
}

// ListPinnedPosts endpoint GET /posts/top
func (h *PostHandler) ListPinnedPosts(c *gin.Context) {
	spec, ok := parseSpec(c)
	if !ok {
		return
	}

	result, err := h.service.ListPinnedPosts(c.Request.Context(), spec)
	if err != nil {
		if errors.Is(err, query.ErrInvalidQuery) {
			utils.SendBadRequest(c, err.Error())
			return
		}
		utils.SendInternalServerError(c, err.Error())
		return
	}

	utils.SendPage(c, toSummaries(result.Items), result.Total, result.Page, result.PageSize, result.TotalPages)
}

// parseSpec decodifica paginación y orden con sus valores por defecto.
// Un parámetro ausente toma el default; uno presente se valida tal cual
// (page=0 explícito es un error del caller, no se corrige en silencio).
func parseSpec(c *gin.Context) (query.Spec, bool) {
	spec := query.Spec{
		Page:     query.DefaultPage,
		PageSize: query.DefaultPageSize,
	}

	if pageStr := c.Query("page"); pageStr != "" {
		v, err := strconv.Atoi(pageStr)
		if err != nil {
			utils.SendBadRequest(c, "invalid page")
			return query.Spec{}, false
		}
		spec.Page = v
	}

	if sizeStr := c.Query("page_size"); sizeStr != "" {
		v, err := strconv.Atoi(sizeStr)
		if err != nil {
			utils.SendBadRequest(c, "invalid page_size")
			return query.Spec{}, false
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
				return query.Spec{}, false
			}
			spec.Sort.Desc = v
		}
	}

	return spec, true
}
