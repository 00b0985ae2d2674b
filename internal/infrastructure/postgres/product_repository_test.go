package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
)

func entries(ids ...string) []entity.LogEntry {
	out := make([]entity.LogEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.LogEntry{ID: id, Type: entity.LogTypeRestock})
	}
	return out
}

// Solo se insertan las entradas agregadas después de la última escritura.
func TestPendingHistory_SoloNuevas(t *testing.T) {
	pending, err := pendingHistory(entries("a", "b", "c", "d"), 3)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "d", pending[0].ID)

	none, err := pendingHistory(entries("a", "b"), 2)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := pendingHistory(entries("a"), 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPendingHistory_Desactualizado(t *testing.T) {
	_, err := pendingHistory(entries("a"), 2)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestHistoryBatch_UnaSentenciaPorEntrada(t *testing.T) {
	b := historyBatch("p1", entries("x", "y"))
	assert.Equal(t, 2, b.Len())
}
