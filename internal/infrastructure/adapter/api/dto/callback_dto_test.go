package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackRequestMapping(t *testing.T) {
	t.Run("full m-pesa style payload", func(t *testing.T) {
		payload := `{
			"external_reference": "DEPOSIT-1717236000000-AB12CD34",
			"status": "completed",
			"success": true,
			"transaction_id": "SW-1001",
			"result": {
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"MpesaReceiptNumber": "SFI9XKQ2LM",
				"Amount": 500,
				"Phone": 254712345678
			}
		}`

		var req CallbackRequest
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		result := req.ToCallbackResult()
		assert.Equal(t, "completed", result.Status)
		assert.True(t, result.Success)
		assert.Equal(t, "SW-1001", result.TransactionID)
		require.NotNil(t, result.ResultCode)
		assert.Equal(t, 0, *result.ResultCode)
		assert.Equal(t, "SFI9XKQ2LM", result.ReceiptCode)
		assert.Equal(t, int64(500), result.Amount)
		assert.Equal(t, "254712345678", result.Phone)
	})

	t.Run("phone delivered as string", func(t *testing.T) {
		payload := `{
			"external_reference": "DEPOSIT-1-A",
			"result": {"ResultCode": 1032, "Phone": "254712345678"}
		}`

		var req CallbackRequest
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		result := req.ToCallbackResult()
		require.NotNil(t, result.ResultCode)
		assert.Equal(t, 1032, *result.ResultCode)
		assert.Equal(t, "254712345678", result.Phone)
	})

	t.Run("fractional amount is rounded", func(t *testing.T) {
		payload := `{"external_reference": "DEPOSIT-1-A", "result": {"Amount": 499.6}}`

		var req CallbackRequest
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		assert.Equal(t, int64(500), req.ToCallbackResult().Amount)
	})

	t.Run("missing result object", func(t *testing.T) {
		payload := `{"external_reference": "DEPOSIT-1-A", "status": "failed"}`

		var req CallbackRequest
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		result := req.ToCallbackResult()
		assert.Nil(t, result.ResultCode)
		assert.Equal(t, "failed", result.Status)
		assert.Empty(t, result.ReceiptCode)
	})

	t.Run("absent result code stays nil, zero stays zero", func(t *testing.T) {
		// ResultCode 0 means success, so its absence must be
		// distinguishable from an explicit zero.
		withZero := `{"external_reference": "X", "result": {"ResultCode": 0}}`
		without := `{"external_reference": "X", "result": {"ResultDesc": "pending"}}`

		var reqZero, reqNone CallbackRequest
		require.NoError(t, json.Unmarshal([]byte(withZero), &reqZero))
		require.NoError(t, json.Unmarshal([]byte(without), &reqNone))

		require.NotNil(t, reqZero.ToCallbackResult().ResultCode)
		assert.Equal(t, 0, *reqZero.ToCallbackResult().ResultCode)
		assert.Nil(t, reqNone.ToCallbackResult().ResultCode)
	})
}
