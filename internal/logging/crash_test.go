package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestRecoverPanic_LogsAndRepanics(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	assert.PanicsWithValue(t, "boom", func() {
		defer RecoverPanic(ctx)
		panic("boom")
	})

	line := buf.String()
	assert.Equal(t, "boom", gjson.Get(line, "panic").String())
	assert.Equal(t, "error", gjson.Get(line, "level").String())
	assert.Contains(t, gjson.Get(line, "stack").String(), "RecoverPanic")
}

func TestRecoverPanic_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	assert.NotPanics(t, func() {
		defer RecoverPanic(ctx)
	})
	assert.Empty(t, buf.String())
}
