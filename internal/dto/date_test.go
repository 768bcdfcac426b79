package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/kasozib/bar_pos_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalsDayOnlyString(t *testing.T) {
	var req dto.CreateVoucherRequest
	payload := `{"date":"2025-07-01","type":"Payment","debitAccount":"Expenses","creditAccount":"Cash/Bank","amount":"5000"}`

	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), req.Date.Time)
}

func TestDate_AcceptsRFC3339Timestamp(t *testing.T) {
	var d dto.Date

	require.NoError(t, json.Unmarshal([]byte(`"2025-07-01T13:45:00Z"`), &d))
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), d.Time)
}

func TestDate_RejectsMalformedString(t *testing.T) {
	var d dto.Date

	err := json.Unmarshal([]byte(`"01/07/2025"`), &d)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestDate_MarshalsDayOnly(t *testing.T) {
	d := dto.NewDate(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))

	out, err := json.Marshal(d)

	require.NoError(t, err)
	assert.Equal(t, `"2025-07-01"`, string(out))
}
