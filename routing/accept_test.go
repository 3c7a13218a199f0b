package routing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shgat/routing"
)

func TestEngine_Accept_MergesSchemaDefaults(t *testing.T) {
	e := newEngine(t)

	schema := []byte(`{
		"type": "object",
		"required": ["path"],
		"properties": {
			"path": {"type": "string"},
			"encoding": {"type": "string", "default": "utf-8"}
		}
	}`)

	require.NoError(t, e.RegisterTool("fs:read", embedding(64, 0.1), ""))
	require.NoError(t, e.RegisterCapability("cap.fs.read", embedding(64, 0.15),
		[]string{"fs:read"}, 0.9, "", schema))

	call, err := e.Accept("cap.fs.read", []byte(`{"path": "/tmp/x"}`))
	require.NoError(t, err)
	require.Equal(t, "cap.fs.read", call.CapabilityID)
	require.JSONEq(t, `{"path": "/tmp/x", "encoding": "utf-8"}`, string(call.Args))
}

func TestEngine_Accept_MissingRequiredArg(t *testing.T) {
	e := newEngine(t)

	schema := []byte(`{"type": "object", "required": ["path"], "properties": {"path": {"type": "string"}}}`)

	require.NoError(t, e.RegisterCapability("cap.fs.read", embedding(64, 0.15), []string{"fs:read"}, 0.9, "", schema))

	_, err := e.Accept("cap.fs.read", []byte(`{}`))
	require.ErrorIs(t, err, routing.ErrAcceptMissingArg)
}

func TestEngine_Accept_TypeMismatch(t *testing.T) {
	e := newEngine(t)

	schema := []byte(`{"type": "object", "properties": {"count": {"type": "number"}}}`)

	require.NoError(t, e.RegisterCapability("cap.a", embedding(64, 0.15), []string{"fs:read"}, 0.9, "", schema))

	_, err := e.Accept("cap.a", []byte(`{"count": "not a number"}`))
	require.ErrorIs(t, err, routing.ErrAcceptTypeMismatch)
}

func TestEngine_Accept_UnknownCapability(t *testing.T) {
	e := newEngine(t)

	_, err := e.Accept("nope", nil)
	require.ErrorIs(t, err, routing.ErrUnknownCapability)
}

func TestEngine_Accept_NoSchemaPassesArgsThrough(t *testing.T) {
	e := newEngine(t)

	require.NoError(t, e.RegisterCapability("cap.a", embedding(64, 0.15), []string{"fs:read"}, 0.9, "", nil))

	call, err := e.Accept("cap.a", []byte(`{"x": 1}`))
	require.NoError(t, err)
	require.JSONEq(t, `{"x": 1}`, string(call.Args))
}
