package test

import (
	"encoding/json"
	"net/http"
	"testing"

	"cadpro-backend/internal/global/response"

	"github.com/stretchr/testify/require"
)

func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	t.Helper()
	require.Equal(t, expected.Code, resp.Code)
}

func NoError(t *testing.T, resp response.ResponseBody) {
	t.Helper()
	require.Contains(t, []int32{http.StatusOK, http.StatusCreated}, resp.Code)
}

// DecodeData reprojeta resp.Data no destino informado.
func DecodeData(t *testing.T, resp response.ResponseBody, dst any) {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dst))
}
