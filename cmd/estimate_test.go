package main

import (
	"Genie-Expiry-Tracker/domain"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runEstimate(t *testing.T, args ...string) (domain.EstimationResult, error) {
	t.Helper()
	cmd := estimateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		return domain.EstimationResult{}, err
	}

	var result domain.EstimationResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	return result, nil
}

func TestEstimateCmd(t *testing.T) {
	result, err := runEstimate(t, "whole", "milk", "--category", domain.CategoryDairy)
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, domain.ConfidenceMedium, result.Confidence)
	assert.Equal(t, 7, result.DaysFromNow)

	result, err = runEstimate(t, "Milk", "-s", "freezer")
	require.NoError(t, err)
	assert.Equal(t, 90, result.DaysFromNow)
	assert.Equal(t, domain.StorageFreezer, result.StorageType)
}

func TestEstimateCmd_Errors(t *testing.T) {
	_, err := runEstimate(t)
	assert.Error(t, err)

	_, err = runEstimate(t, "Milk", "--storage", "cellar")
	assert.ErrorIs(t, err, domain.ErrInvalidStorageType)
}
