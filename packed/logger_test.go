package packed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_DefaultIsNop(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.Nil(t, Logger().Check(zap.ErrorLevel, "x"))
}

func TestLogger_VecReallocEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	v := NewVec()
	v.Push("a")
	v.Pop()
	v.Compact()

	entries := logs.FilterMessage("vec realloc").All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, int64(4), entries[0].ContextMap()["slots"])
		assert.Equal(t, int64(1), entries[1].ContextMap()["reclaimed"])
	}
}
