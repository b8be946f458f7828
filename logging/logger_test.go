package logging_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sasakirione/pokesim/logging"
)

func TestRecorder_PreservesOrder(t *testing.T) {
	rec := logging.NewRecorder()

	rec.Log("Pikachu used Thunderbolt!")
	rec.Log("It dealt 64 damage!")
	rec.LogBlankThen("Turn 2")

	assert.Equal(t, []string{
		"Pikachu used Thunderbolt!",
		"It dealt 64 damage!",
		"",
		"Turn 2",
	}, rec.Lines())
}

func TestRecorder_LinesIsACopy(t *testing.T) {
	rec := logging.NewRecorder()
	rec.Log("first")

	lines := rec.Lines()
	lines[0] = "mutated"

	assert.Equal(t, []string{"first"}, rec.Lines())
}

func TestRecorder_Reset(t *testing.T) {
	rec := logging.NewRecorder()
	rec.Log("line")
	rec.Reset()

	assert.Empty(t, rec.Lines())
}

func TestStdLogger_WritesInfoWithComponent(t *testing.T) {
	base := logrus.New()
	hook := &captureHook{}
	base.AddHook(hook)

	logger := logging.NewStdLogger(base, "battle")
	logger.Log("hello")
	logger.LogBlankThen("world")

	require.Len(t, hook.entries, 3)
	assert.Equal(t, "hello", hook.entries[0].Message)
	assert.Equal(t, "battle", hook.entries[0].Data["component"])
	assert.Equal(t, "", hook.entries[1].Message)
	assert.Equal(t, "world", hook.entries[2].Message)
}

// captureHook records every entry logrus fires.
type captureHook struct {
	entries []*logrus.Entry
}

func (h *captureHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *captureHook) Fire(e *logrus.Entry) error {
	h.entries = append(h.entries, e)
	return nil
}
