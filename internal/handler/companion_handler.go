package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mindmate-go/internal/model"
	"mindmate-go/internal/service"
	"mindmate-go/pkg/metrics"
)

// CompanionHandler 处理两个陪伴聊天端点。
type CompanionHandler struct {
	service service.CompanionService
	metrics *metrics.Metrics
	errs    errorResponder
}

// NewCompanionHandler 创建一个新的 CompanionHandler。m 可以为 nil。
func NewCompanionHandler(companionService service.CompanionService, m *metrics.Metrics, exposeErrors bool) *CompanionHandler {
	return &CompanionHandler{
		service: companionService,
		metrics: m,
		errs:    errorResponder{exposeErrors: exposeErrors},
	}
}

// Chat 处理 ai-chat：完整人设的简短陪伴回复。
func (h *CompanionHandler) Chat(c *gin.Context) {
	var req model.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.internal(c, "ai-chat", err)
		return
	}

	reply, err := h.service.Reply(c.Request.Context(), req.Text())
	if errors.Is(err, service.ErrEmptyMessage) {
		h.errs.badRequest(c, msgMessageRequired)
		return
	}
	if err != nil {
		h.errs.internal(c, "ai-chat", err)
		return
	}
	if reply.Fallback {
		h.metrics.Fallback("ai-chat")
	}
	c.JSON(http.StatusOK, model.ReplyResponse{Reply: reply.Text})
}

// Support 处理 ai-service：根据消息是否只含 emoji 选择回复长度。
func (h *CompanionHandler) Support(c *gin.Context) {
	var req model.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.internal(c, "ai-service", err)
		return
	}

	reply, err := h.service.SupportiveReply(c.Request.Context(), req.Text())
	if errors.Is(err, service.ErrEmptyMessage) {
		h.errs.badRequest(c, msgMessageRequired)
		return
	}
	if err != nil {
		h.errs.internal(c, "ai-service", err)
		return
	}
	if reply.EmojiOnly {
		h.metrics.EmojiOnly()
	}
	if reply.Fallback {
		h.metrics.Fallback("ai-service")
	}
	c.JSON(http.StatusOK, model.ReplyResponse{Reply: reply.Text})
}
