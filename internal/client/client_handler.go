package client

import (
	"net/http"
	"strconv"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/apperror"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/contextutil"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/response"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	store  *storage.DiskStore
	logger *zap.Logger
}

func NewHandler(service Service, store *storage.DiskStore, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("client.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.handler")
	}
	return &Handler{svc: service, store: store, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Create handles the multipart onboarding form: client fields, an optional
// picture and a works JSON array, all in one request.
func (h *Handler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBind(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	if fh, err := c.FormFile("client_pic"); err == nil {
		name, saveErr := h.store.Save(fh)
		if saveErr != nil {
			h.logger.Error("save client picture failed", zap.Error(saveErr))
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Error adding client and works", nil)
			return
		}
		req.ClientPic = name
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.Create(ctx, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if pageSize < 1 {
		pageSize = 50
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) Search(c *gin.Context) {
	resp, err := h.svc.Search(c.Request.Context(), c.Param("term"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
