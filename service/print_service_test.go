package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint_SpoolsThroughLp(t *testing.T) {
	var gotName string
	var gotArgs []string
	var spooled []byte

	svc := NewPrintService("HP_LaserJet")
	svc.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		data, err := os.ReadFile(args[len(args)-1])
		require.NoError(t, err)
		spooled = data
		return []byte("request id is HP_LaserJet-12"), nil
	}

	require.NoError(t, svc.Print(context.Background(), "PAGAMENTOS DIVERSOS", []byte("%PDF-1.4")))

	assert.Equal(t, "lp", gotName)
	assert.Equal(t, []string{"-t", "PAGAMENTOS DIVERSOS", "-d", "HP_LaserJet"}, gotArgs[:4])
	assert.Equal(t, "%PDF-1.4", string(spooled))
	assert.NoFileExists(t, gotArgs[len(gotArgs)-1])
}

func TestPrint_DefaultPrinter(t *testing.T) {
	var gotArgs []string
	svc := NewPrintService("")
	svc.run = func(_ context.Context, _ string, args ...string) ([]byte, error) {
		gotArgs = args
		return nil, nil
	}

	require.NoError(t, svc.Print(context.Background(), "Recibo", []byte("%PDF")))
	assert.NotContains(t, gotArgs, "-d")
	assert.Len(t, gotArgs, 3)
}

func TestPrint_Failure(t *testing.T) {
	svc := NewPrintService("")
	svc.run = func(context.Context, string, ...string) ([]byte, error) {
		return []byte("lp: Error - no default destination available.\n"), errors.New("exit status 1")
	}

	err := svc.Print(context.Background(), "Recibo", []byte("%PDF"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no default destination available.")
}

func TestPrint_EmptyDocument(t *testing.T) {
	svc := NewPrintService("")
	assert.ErrorIs(t, svc.Print(context.Background(), "Recibo", nil), ErrNoPages)
}
