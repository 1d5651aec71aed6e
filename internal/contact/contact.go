// Package contact implements the contact form: field validation, the
// simulated submission and the status banner lifecycle.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// DefaultDelay is how long the simulated submission takes.
	DefaultDelay = 1500 * time.Millisecond
	// DefaultStatusTTL is how long the success banner stays up.
	DefaultStatusTTL = 5 * time.Second
)

var ErrSubmitFailed = errors.New("message could not be sent")

// Draft is the form as typed by the visitor. It lives for one submission.
type Draft struct {
	Name    string `form:"name" validate:"required,max=200"`
	Email   string `form:"email" validate:"required,email,max=320"`
	Subject string `form:"subject" validate:"required,max=300"`
	Service string `form:"service" validate:"max=200"`
	Budget  string `form:"budget" validate:"max=200"`
	Message string `form:"message" validate:"required,max=5000"`
}

// Status is the banner state of the form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Submission is a validated draft on its way out.
type Submission struct {
	ID    string
	Draft Draft
}

// Submitter delivers a submission.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// SimulatedSubmitter pretends to send the message by waiting Delay. It only
// fails when ctx ends first.
type SimulatedSubmitter struct {
	Delay time.Duration
}

func (s SimulatedSubmitter) Submit(ctx context.Context, _ Submission) error {
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrSubmitFailed, ctx.Err())
	case <-t.C:
		return nil
	}
}

// Options are the allowed values of the select fields.
type Options struct {
	Services []string
	Budgets  []string
}

// Outcome is the state of the form after a submit.
type Outcome struct {
	ID        string
	Status    Status
	Draft     Draft
	Errors    map[string]string
	ExpiresAt time.Time
}

// StatusAt returns the banner state at t. A success banner expires; a
// failure stays until the next attempt.
func (o Outcome) StatusAt(t time.Time) Status {
	if o.Status == StatusSucceeded && !t.Before(o.ExpiresAt) {
		return StatusIdle
	}
	return o.Status
}

// Desk validates and submits drafts.
type Desk struct {
	submitter Submitter
	options   func() Options
	ttl       time.Duration
	validate  *validator.Validate
	logger    *slog.Logger

	// Now is the clock; tests replace it.
	Now func() time.Time
	// OnOutcome, when set, observes every terminal outcome.
	OnOutcome func(Status)
}

// NewDesk builds a desk. options is consulted on every validation so the
// select lists can change while the desk is in use. A nil submitter gets the
// default simulated one.
func NewDesk(sub Submitter, options func() Options, ttl time.Duration, logger *slog.Logger) *Desk {
	if options == nil {
		options = func() Options { return Options{} }
	}
	if sub == nil {
		sub = SimulatedSubmitter{Delay: DefaultDelay}
	}
	if ttl <= 0 {
		ttl = DefaultStatusTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Desk{
		submitter: sub,
		options:   options,
		ttl:       ttl,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger.With("component", "contact"),
		Now:       time.Now,
	}
}

// StatusTTL is how long a success banner stays visible.
func (d *Desk) StatusTTL() time.Duration { return d.ttl }

// Validate returns a message per invalid field, or nil.
func (d *Desk) Validate(draft Draft) map[string]string {
	errs := map[string]string{}
	if err := d.validate.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs["form"] = err.Error()
			return errs
		}
		for _, fe := range verrs {
			errs[strings.ToLower(fe.Field())] = message(fe)
		}
	}
	opts := d.options()
	if draft.Service != "" && !slices.Contains(opts.Services, draft.Service) {
		errs["service"] = "Please pick a service from the list"
	}
	if draft.Budget != "" && !slices.Contains(opts.Budgets, draft.Budget) {
		errs["budget"] = "Please pick a budget range from the list"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit runs one attempt. Invalid drafts come back unchanged with field
// errors; a successful send clears every field.
func (d *Desk) Submit(ctx context.Context, draft Draft) Outcome {
	if errs := d.Validate(draft); errs != nil {
		return Outcome{Status: StatusIdle, Draft: draft, Errors: errs}
	}

	sub := Submission{ID: uuid.NewString(), Draft: draft}
	log := d.logger.With("submission", sub.ID)
	log.Debug("submitting", "status", StatusSubmitting)

	if err := d.submitter.Submit(ctx, sub); err != nil {
		log.Warn("submission failed", "error", err)
		d.observe(StatusFailed)
		return Outcome{ID: sub.ID, Status: StatusFailed, Draft: draft}
	}

	log.Info("message received", "service", draft.Service, "budget", draft.Budget)
	d.observe(StatusSucceeded)
	return Outcome{
		ID:        sub.ID,
		Status:    StatusSucceeded,
		Draft:     Draft{},
		ExpiresAt: d.Now().Add(d.ttl),
	}
}

func (d *Desk) observe(s Status) {
	if d.OnOutcome != nil {
		d.OnOutcome(s)
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "max":
		return "This field is too long"
	}
	return "Invalid value"
}
