package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportGuard_OneExportPerDocument(t *testing.T) {
	guard := NewExportGuard()

	release, err := guard.Acquire("doc-1")
	require.NoError(t, err)
	assert.True(t, guard.Busy("doc-1"))

	_, err = guard.Acquire("doc-1")
	assert.ErrorIs(t, err, ErrExportInProgress)

	other, err := guard.Acquire("doc-2")
	require.NoError(t, err)
	other()

	release()
	release()
	assert.False(t, guard.Busy("doc-1"))

	again, err := guard.Acquire("doc-1")
	require.NoError(t, err)
	again()
}
