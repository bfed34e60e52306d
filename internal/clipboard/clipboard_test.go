package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	var b Buffer
	require.NoError(t, b.WriteText("Laporan Piutang"))
	assert.Equal(t, "Laporan Piutang", b.Text)
}
