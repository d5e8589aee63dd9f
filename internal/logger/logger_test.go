package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoggerErrorIncludesContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: "debug", Output: buf})

	ctx := log.WithRequestID(context.Background(), "req-123")
	ctx = log.WithFields(ctx, map[string]any{"soda_id": 7})

	log.Error(ctx, "boom", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-123"`)
	assert.Contains(t, out, `"soda_id":7`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"service":"test"`)
}

func TestLoggerRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: "warn", Output: buf})

	log.Info(context.Background(), "quiet")
	log.Debug(context.Background(), "quieter")
	assert.Zero(t, buf.Len())

	log.Warn(context.Background(), "loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestParseLevelDefaults(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("invalid"))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" DEBUG "))
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Info(context.Background(), "nothing")
	log.Error(context.TODO(), "nothing", errors.New("x"))
}

func TestLoggerDefaultsToInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Output: buf})

	log.Debug(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	log.Info(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")
}
