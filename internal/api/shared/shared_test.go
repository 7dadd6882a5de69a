package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)
	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(context.Background())))
}

func TestLearnerID(t *testing.T) {
	t.Parallel()

	_, ok := GetLearnerID(context.Background())
	assert.False(t, ok)

	_, ok = GetLearnerID(WithLearnerID(context.Background(), uuid.Nil))
	assert.False(t, ok)

	id := uuid.New()
	got, ok := GetLearnerID(WithLearnerID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Code string `json:"code"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
		want    string
	}{
		{"valid", `{"code":"SUM(Sales[Qty])"}`, false, "SUM(Sales[Qty])"},
		{"empty", ``, true, ""},
		{"unknown field", `{"code":"x","extra":1}`, true, ""},
		{"wrong type", `{"code":1}`, true, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeJSON(r, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Code)
		})
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	var p payload
	assert.ErrorIs(t, DecodeJSON(r, &p), ErrEmptyBody)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	ctx, logBuf := logger.NewLogCaptureContext(t)
	ctx = SetTraceID(ctx)
	r := httptest.NewRequest(http.MethodGet, "/api/progress", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	cause := assert.AnError
	RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Something went wrong", cause)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Something went wrong", resp.Error)
	assert.Equal(t, GetTraceID(ctx), resp.TraceID)
	assert.NotContains(t, w.Body.String(), cause.Error())

	entries, err := logBuf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Equal(t, cause.Error(), entries[0]["error"])
	assert.Equal(t, resp.TraceID, entries[0]["trace_id"])
}

func TestRespondWithErrorAndLog_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		opts   []ResponseOption
		level  string
	}{
		{"client error", http.StatusBadRequest, nil, "DEBUG"},
		{"elevated client error", http.StatusUnauthorized, []ResponseOption{WithElevatedLogLevel()}, "WARN"},
		{"rate limited", http.StatusTooManyRequests, nil, "WARN"},
		{"server error", http.StatusBadGateway, nil, "ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, logBuf := logger.NewLogCaptureContext(t)
			r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

			RespondWithErrorAndLog(httptest.NewRecorder(), r, tt.status, "msg", nil, tt.opts...)

			entries, err := logBuf.Entries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0]["level"])
		})
	}
}
