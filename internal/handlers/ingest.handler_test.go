package handlers

import (
	"testing"

	"melodex/internal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForBatchResult(t *testing.T) {
	testCases := []struct {
		name     string
		result   types.BatchResult
		expected int
	}{
		{
			name: "rejected batch",
			result: types.BatchResult{
				Error:   "No tracks provided",
				Results: []types.ItemResult{},
			},
			expected: fiber.StatusBadRequest,
		},
		{
			name: "pre-pass failure",
			result: types.BatchResult{
				Error:       "connection refused",
				FailedCount: 5,
				Results:     []types.ItemResult{},
			},
			expected: fiber.StatusBadRequest,
		},
		{
			name: "full success",
			result: types.BatchResult{
				Success:      true,
				SuccessCount: 2,
				Results:      []types.ItemResult{{Success: true}, {Success: true}},
			},
			expected: fiber.StatusCreated,
		},
		{
			name: "partial failure",
			result: types.BatchResult{
				SuccessCount: 1,
				FailedCount:  1,
				Results:      []types.ItemResult{{Success: true}, {}},
			},
			expected: fiber.StatusMultiStatus,
		},
		{
			name: "all items failed",
			result: types.BatchResult{
				FailedCount: 2,
				Results:     []types.ItemResult{{}, {}},
			},
			expected: fiber.StatusMultiStatus,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, statusForBatchResult(tc.result))
		})
	}
}
