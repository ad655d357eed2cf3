package obslog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLoggerMethodsDoNotPanic(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotPanics(t, func() {
		l.Debugf("x=%d", 1)
		l.Debugw("x", map[string]any{"a": 1})
		l.Infof("x=%d", 1)
		l.Warnf("x=%d", 1)
		l.Errorf("x=%d", 1)
	})
}

func TestNewReturnsAWorkingLogger(t *testing.T) {
	l := New("test-component")
	assert.NotPanics(t, func() {
		l.Infof("instance generated: %d switches", 10)
		l.Debugw("generated", map[string]any{"switches": 10, "teams": 2})
	})
}

func TestSortedFieldKeysIsDeterministic(t *testing.T) {
	fields := map[string]any{"c": 3, "a": 1, "b": 2}
	assert.Equal(t, []string{"a", "b", "c"}, sortedFieldKeys(fields))
}
