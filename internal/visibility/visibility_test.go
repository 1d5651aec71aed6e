package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnceStaysVisible(t *testing.T) {
	tr := NewTrigger(Once, 0)
	assert.Equal(t, Hidden, tr.State())
	assert.Equal(t, DefaultThreshold, tr.Threshold)

	assert.Equal(t, Hidden, tr.Observe(false))
	assert.Equal(t, Visible, tr.Observe(true))
	assert.Equal(t, Visible, tr.Observe(false))
	assert.Equal(t, Visible, tr.Observe(true))
}

func TestRepeatFollowsViewport(t *testing.T) {
	tr := NewTrigger(Repeat, 0.1)

	seq := []struct {
		in   bool
		want State
	}{
		{true, Visible},
		{false, Hidden},
		{true, Visible},
		{false, Hidden},
	}
	for _, s := range seq {
		assert.Equal(t, s.want, tr.Observe(s.in))
	}
}

func TestThresholdFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultThreshold, NewTrigger(Once, 1.5).Threshold)
	assert.Equal(t, 0.25, NewTrigger(Once, 0.25).Threshold)
}

func TestSectionInitialAndInView(t *testing.T) {
	for _, id := range []string{"about", "projects", "unknown"} {
		s := For(id)
		assert.Equal(t, Hidden, s.Initial(), id)
		assert.Equal(t, Visible, s.InView(), id)
	}
}

func TestSectionModes(t *testing.T) {
	assert.Equal(t, Repeat, For("projects").Mode)
	assert.Equal(t, "repeat", For("projects").Attr())
	for _, id := range []string{"about", "skills", "experience", "services", "contact", "unknown"} {
		assert.Equal(t, Once, For(id).Mode, id)
	}
}
