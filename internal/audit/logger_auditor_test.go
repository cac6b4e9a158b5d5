package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"people/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditor(enabled bool) (*LoggerAuditor, *bytes.Buffer) {
	var buf bytes.Buffer
	a := NewLoggerAuditor(enabled)
	a.logger = logging.NewLogger("info")
	a.logger.SetOutput(&buf)
	return a, &buf
}

func TestLog_Enabled(t *testing.T) {
	a, buf := newTestAuditor(true)
	ctx := logging.WithRequestID(context.Background(), "req-1")

	a.Log(ctx, "person.create", "anonymous", "Person:abc", map[string]interface{}{"name": "John Smith"})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "AUDIT EVENT", line["msg"])
	assert.Equal(t, "person.create", line["audit_action"])
	assert.Equal(t, "anonymous", line["audit_actor"])
	assert.Equal(t, "Person:abc", line["audit_resource"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "John Smith", line["detail.name"])
}

func TestLog_Disabled(t *testing.T) {
	a, buf := newTestAuditor(false)
	a.Log(context.Background(), "person.delete", "anonymous", "Person:abc", nil)
	assert.Zero(t, buf.Len())
}

func TestLog_NilDetails(t *testing.T) {
	a, buf := newTestAuditor(true)
	a.Log(context.Background(), "person.delete", "seed", "Person:abc", nil)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "seed", line["audit_actor"])
	assert.NotContains(t, line, "request_id")
}
