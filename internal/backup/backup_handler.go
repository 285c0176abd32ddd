package backup

import (
	"net/http"

	"chequebook/internal/shared/apperror"
	"chequebook/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("backup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("backup.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("backup request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Export writes the snapshot itself, not the usual envelope, so the response
// body can be saved to a file and fed straight back into Import.
func (h *Handler) Export(c *gin.Context) {
	snap, err := h.service.Export(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="chequebook-backup.json"`)
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) Import(c *gin.Context) {
	var snap Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Import(c.Request.Context(), snap)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}
