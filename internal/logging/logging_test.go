package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.TraceLevel, ParseLevel("trace"))
	assert.Equal(t, logrus.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
}

func TestIsValidLevel(t *testing.T) {
	assert.True(t, IsValidLevel("Info"))
	assert.False(t, IsValidLevel("verbose"))
}

func TestFromContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	original := Log.Out
	Log.SetOutput(&buf)
	defer Log.SetOutput(original)

	ctx := WithRequestID(context.Background(), "01HZY")
	assert.Equal(t, "01HZY", RequestID(ctx))
	FromContext(ctx).Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "01HZY", line["request_id"])
	assert.Equal(t, "hello", line["msg"])
}

func TestRequestID_Absent(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}
