package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartwalle/notify"
)

// spyNotification records every call made through the Notification contract.
type spyNotification struct {
	fenced  int
	counted []int
	tagged  int
}

func (this *spyNotification) Fence() {
	this.fenced++
}

func (this *spyNotification) Count(waiting int) int {
	this.counted = append(this.counted, waiting)
	return waiting + 1
}

func (this *spyNotification) NextTag() notify.Unit {
	this.tagged++
	return notify.Unit{}
}

func TestRelaxed_SuppressesFence(t *testing.T) {
	var spy = &spyNotification{}
	var n = notify.NewRelaxed[notify.Unit](spy)

	n.Fence()
	assert.Equal(t, 0, spy.fenced)

	// Count and NextTag delegate unchanged.
	assert.Equal(t, 3, n.Count(2))
	assert.Equal(t, []int{2}, spy.counted)
	n.NextTag()
	assert.Equal(t, 1, spy.tagged)
}

func TestTag_Delegates(t *testing.T) {
	var spy = &spyNotification{}
	var n = notify.NewTag("done", spy)

	n.Fence()
	assert.Equal(t, 1, spy.fenced)
	assert.Equal(t, 3, n.Count(2))
	assert.Equal(t, []int{2}, spy.counted)
}

func TestTag_NextTag(t *testing.T) {
	var n = notify.NewTag("done", notify.From(5))
	for i := 0; i < 3; i++ {
		assert.Equal(t, "done", n.NextTag())
	}
}

func TestTagWith_NextTag(t *testing.T) {
	var calls = 0
	var n = notify.NewTagWith(func() int {
		calls++
		return calls * 10
	}, notify.From(5))

	// The generator runs exactly once per call, in call order.
	assert.Equal(t, 10, n.NextTag())
	assert.Equal(t, 20, n.NextTag())
	assert.Equal(t, 30, n.NextTag())
	assert.Equal(t, 3, calls)
}

func TestTagWith_Delegates(t *testing.T) {
	var spy = &spyNotification{}
	var n = notify.NewTagWith(func() string { return "x" }, spy)

	n.Fence()
	assert.Equal(t, 1, spy.fenced)
	assert.Equal(t, 5, n.Count(4))
	assert.Equal(t, []int{4}, spy.counted)
	assert.Equal(t, 0, spy.tagged)
}

func TestCompose_OutermostRelaxedWins(t *testing.T) {
	var spy = &spyNotification{}
	var n = notify.NewTag("done", spy).Relaxed()

	n.Fence()
	assert.Equal(t, 0, spy.fenced)
	assert.Equal(t, "done", n.NextTag())
}

func TestRelaxed_Relaxed(t *testing.T) {
	var spy = &spyNotification{}
	var n = notify.NewRelaxed[notify.Unit](spy).Relaxed()

	n.Fence()
	assert.Equal(t, 0, spy.fenced)
	assert.Equal(t, 3, n.Count(2))
	assert.Equal(t, []int{2}, spy.counted)
}

func TestScenario_TopUpWithTag(t *testing.T) {
	// waiting = 2, strategy = top up to 5 notified, tag "done".
	var n = notify.NewTag("done", notify.From(5))

	n.Fence()
	assert.Equal(t, 3, n.Count(2))
	for i := 0; i < 3; i++ {
		assert.Equal(t, "done", n.NextTag())
	}
}

func TestScenario_AdditionalRelaxed(t *testing.T) {
	// waiting = 2, strategy = exactly 5 more, no fence.
	var n = notify.From(5).Additional().Relaxed()

	n.Fence()
	assert.Equal(t, 5, n.Count(2))
}
