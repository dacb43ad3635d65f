package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShopRefusesNonTerminal(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{{"shop"}, {}} {
		_, _, err := executeCommand(t, args...)
		require.Error(t, err)
		require.ErrorIs(t, err, errNotTerminal)
	}
}

func TestIsTerminalRejectsBuffers(t *testing.T) {
	require.False(t, isTerminal(&bytes.Buffer{}))
}
