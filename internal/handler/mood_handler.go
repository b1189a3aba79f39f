package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mindmate-go/internal/model"
	"mindmate-go/internal/service"
	"mindmate-go/pkg/metrics"
)

// MoodHandler 处理日记情绪识别端点。
type MoodHandler struct {
	service service.MoodService
	metrics *metrics.Metrics
	errs    errorResponder
}

// NewMoodHandler 创建一个新的 MoodHandler。m 可以为 nil。
func NewMoodHandler(moodService service.MoodService, m *metrics.Metrics, exposeErrors bool) *MoodHandler {
	return &MoodHandler{
		service: moodService,
		metrics: m,
		errs:    errorResponder{exposeErrors: exposeErrors},
	}
}

// AnalyzeJournal 返回日记正文的主要情绪标签。
func (h *MoodHandler) AnalyzeJournal(c *gin.Context) {
	var req model.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.internal(c, "analyze-journal", err)
		return
	}

	result, err := h.service.Detect(c.Request.Context(), req.Text())
	if errors.Is(err, service.ErrEmptyMessage) {
		h.errs.badRequest(c, msgJournalRequired)
		return
	}
	if err != nil {
		h.errs.internal(c, "analyze-journal", err)
		return
	}
	if result.Fallback {
		h.metrics.Fallback("analyze-journal")
	}
	c.JSON(http.StatusOK, model.MoodResponse{Mood: string(result.Mood)})
}
