package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
	"github.com/jhoicas/Inventario-multimarca/internal/application/usecase"
)

type fakeInsights struct {
	out   []string
	err   error
	delay time.Duration
	got   dto.InsightSummary
}

func (f *fakeInsights) GenerateInsights(ctx context.Context, s dto.InsightSummary) ([]string, error) {
	f.got = s
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	return f.out, f.err
}

var summary = dto.InsightSummary{Brand: "Yuteco", Period: "2026-03"}

func TestInsight_RecortaYLimita(t *testing.T) {
	svc := &fakeInsights{out: []string{" uno ", "", "dos", "tres", "cuatro", "cinco", "seis"}}
	uc := usecase.NewInsightUseCase(svc, time.Second, nil)

	got := uc.Generate(context.Background(), summary)
	assert.Equal(t, []string{"uno", "dos", "tres", "cuatro", "cinco"}, got)
	assert.Equal(t, "Yuteco", svc.got.Brand)
}

func TestInsight_Fallback(t *testing.T) {
	cases := map[string]*fakeInsights{
		"error":     {err: errors.New("boom")},
		"vacío":     {out: []string{"  ", ""}},
		"sin datos": {},
		"timeout":   {out: []string{"tarde"}, delay: time.Second},
	}
	for name, svc := range cases {
		t.Run(name, func(t *testing.T) {
			uc := usecase.NewInsightUseCase(svc, 20*time.Millisecond, nil)
			assert.Equal(t, usecase.FallbackInsights, uc.Generate(context.Background(), summary))
		})
	}
}

func TestInsight_SinServicio(t *testing.T) {
	uc := usecase.NewInsightUseCase(nil, 0, nil)

	got := uc.Generate(context.Background(), summary)
	assert.Len(t, got, 3)
	got[0] = "modificado"
	assert.NotEqual(t, "modificado", usecase.FallbackInsights[0], "la lista global no se altera")
}
