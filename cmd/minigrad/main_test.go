package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloats(t *testing.T) {
	got, err := parseFloats("1, 0,-1.5,")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, -1.5}, got)

	_, err = parseFloats("1,x")
	assert.Error(t, err)

	_, err = parseFloats(" , ")
	assert.Error(t, err)
}

func TestRunTrain(t *testing.T) {
	err := runTrain([]string{"-epochs", "20", "-lr", "0.1", "-log-every", "0"})
	assert.NoError(t, err)

	assert.Error(t, runTrain([]string{"-activation", "relu"}))
	assert.Error(t, runTrain([]string{"-loss", "hinge"}))
	assert.Error(t, runTrain([]string{"-inputs", "a,b"}))
}

func TestRunCheck(t *testing.T) {
	assert.NoError(t, runCheck(nil))
}
