package v1

import (
	"errors"
	"net/http"

	"salon-relay-backend/internal/delivery/http/response"
	"salon-relay-backend/internal/domain"
	"salon-relay-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewSubmissionHandler registers the submission route (public, no auth required)
func NewSubmissionHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &SubmissionHandler{
		submissionUC: submissionUC,
	}

	public.POST("/send", handler.Send)
}

// Send godoc
// @Summary      Submit Booking Request
// @Description  Validate a booking form submission and relay it to the operator's Telegram chat. This is a public endpoint.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.SubmissionRequest  true  "Booking Form Data"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.ErrorResponse
// @Failure      500         {object}  response.ErrorResponse
// @Router       /send [post]
func (h *SubmissionHandler) Send(c *gin.Context) {
	var req domain.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Некорректный запрос: " + err.Error()))
		return
	}

	if err := h.submissionUC.Submit(c.Request.Context(), &req); err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.Error(apperror.BadRequest(vErr.Error()))
		case errors.Is(err, domain.ErrNotConfigured):
			c.Error(apperror.ServiceUnavailable("Сервис временно недоступен", err))
		default:
			c.Error(apperror.Internal("Не удалось отправить сообщение", err))
		}
		return
	}

	response.Success(c, http.StatusOK, nil)
}
