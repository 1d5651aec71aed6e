package contact

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opts() Options {
	return Options{
		Services: []string{"Frontend Development", "Other / Custom"},
		Budgets:  []string{"$500 - $1000", "Not sure yet"},
	}
}

func validDraft() Draft {
	return Draft{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "A website",
		Service: "Frontend Development",
		Budget:  "Not sure yet",
		Message: "Hello there",
	}
}

func TestSubmitClearsFieldsAndExpiresBanner(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	d := NewDesk(SimulatedSubmitter{Delay: 20 * time.Millisecond}, opts, DefaultStatusTTL, nil)
	d.Now = func() time.Time { return start }

	var seen []Status
	d.OnOutcome = func(s Status) { seen = append(seen, s) }

	began := time.Now()
	out := d.Submit(context.Background(), validDraft())
	assert.GreaterOrEqual(t, time.Since(began), 20*time.Millisecond)

	assert.Equal(t, StatusSucceeded, out.Status)
	assert.Equal(t, Draft{}, out.Draft)
	assert.NotEmpty(t, out.ID)
	assert.Nil(t, out.Errors)
	assert.Equal(t, []Status{StatusSucceeded}, seen)

	assert.Equal(t, StatusSucceeded, out.StatusAt(start))
	assert.Equal(t, StatusSucceeded, out.StatusAt(start.Add(DefaultStatusTTL-time.Millisecond)))
	assert.Equal(t, StatusIdle, out.StatusAt(start.Add(DefaultStatusTTL)))
}

func TestSubmitRejectsInvalidDraft(t *testing.T) {
	d := NewDesk(SimulatedSubmitter{}, opts, 0, nil)

	draft := validDraft()
	draft.Name = ""
	draft.Email = "not-an-email"
	draft.Budget = "a million"

	out := d.Submit(context.Background(), draft)
	assert.Equal(t, StatusIdle, out.Status)
	assert.Equal(t, draft, out.Draft)
	assert.Contains(t, out.Errors, "name")
	assert.Contains(t, out.Errors, "email")
	assert.Contains(t, out.Errors, "budget")
	assert.NotContains(t, out.Errors, "subject")
	assert.Empty(t, out.ID)
}

func TestValidate(t *testing.T) {
	d := NewDesk(nil, opts, 0, nil)
	assert.Equal(t, DefaultStatusTTL, d.StatusTTL())

	assert.Nil(t, d.Validate(validDraft()))

	optional := validDraft()
	optional.Service = ""
	optional.Budget = ""
	assert.Nil(t, d.Validate(optional))

	errs := d.Validate(Draft{})
	assert.Len(t, errs, 4)
	for _, f := range []string{"name", "email", "subject", "message"} {
		assert.Equal(t, "This field is required", errs[f], f)
	}

	long := validDraft()
	long.Message = strings.Repeat("x", 5001)
	assert.Equal(t, "This field is too long", d.Validate(long)["message"])

	unknown := validDraft()
	unknown.Service = "Plumbing"
	assert.Contains(t, d.Validate(unknown), "service")
}

func TestSimulatedSubmitterHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := SimulatedSubmitter{Delay: time.Hour}.Submit(ctx, Submission{})
	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

type failingSubmitter struct{}

func (failingSubmitter) Submit(context.Context, Submission) error {
	return errors.New("boom")
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	d := NewDesk(failingSubmitter{}, opts, 0, nil)
	var seen []Status
	d.OnOutcome = func(s Status) { seen = append(seen, s) }

	draft := validDraft()
	out := d.Submit(context.Background(), draft)
	require.Equal(t, StatusFailed, out.Status)
	assert.Equal(t, draft, out.Draft)
	assert.Equal(t, []Status{StatusFailed}, seen)

	// The error banner does not time out.
	assert.Equal(t, StatusFailed, out.StatusAt(time.Now().Add(time.Hour)))
}
