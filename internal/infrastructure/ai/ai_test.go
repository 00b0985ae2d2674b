package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
)

var summary = dto.InsightSummary{
	Brand:         "Finca Don Rafa",
	Period:        "Marzo 2026",
	TotalSales:    4,
	Revenue:       decimal.RequireFromString("1250.50"),
	LowStockItems: 2,
}

func TestParseInsights(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"json plano", `{"insights":["a","b"]}`, []string{"a", "b"}},
		{"bloque markdown", "```json\n{\"insights\":[\"x\"]}\n```", []string{"x"}},
		{"texto alrededor", "Claro, aquí va:\n{\"insights\":[\"y\",\"z\"]}\nSaludos", []string{"y", "z"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseInsights(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := parseInsights("sin json")
	assert.Error(t, err)
	_, err = parseInsights("{insights: nope}")
	assert.Error(t, err)
}

func TestUserPrompt_IncluyeResumen(t *testing.T) {
	p, err := userPrompt(summary)
	require.NoError(t, err)
	assert.Contains(t, p, `"brand":"Finca Don Rafa"`)
	assert.Contains(t, p, `"lowStockItems":2`)
}

func TestGemini_GenerateInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "k-123", r.URL.Query().Get("key"))

		var req geminiRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMIMEType)
		if !assert.Len(t, req.Contents, 1) {
			return
		}
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Marzo 2026")

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"insights\":[\"Reponer p2\",\"Subir precio p1\"]}"}]}}]}`))
	}))
	defer srv.Close()

	svc := NewGeminiService("k-123", "gemini-1.5-flash", srv.URL)
	got, err := svc.GenerateInsights(context.Background(), summary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Reponer p2", "Subir precio p1"}, got)
}

func TestGemini_Errores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key inválida"}}`))
	}))
	defer srv.Close()

	_, err := NewGeminiService("k", "m", srv.URL).GenerateInsights(context.Background(), summary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key inválida")

	_, err = NewGeminiService("", "m", srv.URL).GenerateInsights(context.Background(), summary)
	assert.Error(t, err, "sin api key no llama")
}

func TestAnthropic_GenerateInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req anthropicRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-3-5-haiku-20241022", req.Model)
		assert.Equal(t, insightSystemPrompt, req.System)

		resp := map[string]any{"content": []map[string]string{{
			"type": "text",
			"text": "```json\n{\"insights\":[\"Revisar envíos Ecotact\"]}\n```",
		}}}
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	svc := NewAnthropicService("sk-test", "claude-3-5-haiku-20241022", srv.URL)
	got, err := svc.GenerateInsights(context.Background(), summary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Revisar envíos Ecotact"}, got)
}

func TestAnthropic_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewAnthropicService("sk", "m", srv.URL).GenerateInsights(ctx, summary)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAnthropic_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	_, err := NewAnthropicService("sk", "m", srv.URL).GenerateInsights(context.Background(), summary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
}
