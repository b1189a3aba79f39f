package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindmate-go/pkg/llm"
	"mindmate-go/pkg/llm/llmtest"
)

func TestInstrumentClient(t *testing.T) {
	m := New()

	ok := m.InstrumentClient(&llmtest.Fake{Text: "hi"})
	_, err := ok.Complete(context.Background(), llm.Request{Model: "gpt-4.1-nano"})
	require.NoError(t, err)

	empty := m.InstrumentClient(&llmtest.Fake{})
	_, err = empty.Complete(context.Background(), llm.Request{Model: "gpt-4.1-nano"})
	require.NoError(t, err)

	failing := m.InstrumentClient(&llmtest.Fake{Err: errors.New("boom")})
	_, err = failing.Complete(context.Background(), llm.Request{Model: "gpt-4.1-mini"})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("gpt-4.1-nano", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("gpt-4.1-nano", "empty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("gpt-4.1-mini", "error")))
}

func TestCountersAndHandler(t *testing.T) {
	m := New()
	m.ObserveRequest("/functions/v1/ai-chat", http.StatusOK, 20*time.Millisecond)
	m.Fallback("ai-service")
	m.EmojiOnly()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/functions/v1/ai-chat", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks.WithLabelValues("ai-service")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.emojiOnly))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mindmate_emoji_only_messages_total 1")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("/", 200, time.Second)
		m.Fallback("x")
		m.EmojiOnly()
	})
	fake := &llmtest.Fake{}
	assert.Same(t, fake, m.InstrumentClient(fake))
}
