package contact

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"hcdigital.dev/web/internal/observability"
)

// View is what the contact panel needs to render one mount.
type View struct {
	MountID string
	Status  Status
	Fields  Fields
	Errors  FieldErrors
}

// Disabled reports whether inputs and the submit control are non-interactive.
func (v View) Disabled() bool {
	return v.Status == StatusSubmitting || v.Status == StatusSuccess
}

// Flow runs submissions for mounts held in a Registry.
type Flow struct {
	forms  *Registry
	sender Sender
}

// NewFlow wires a registry to a sender.
func NewFlow(forms *Registry, sender Sender) *Flow {
	return &Flow{forms: forms, sender: sender}
}

// Forms exposes the registry so the shell can mount and discard forms.
func (f *Flow) Forms() *Registry { return f.forms }

// View returns the render state of a mount.
func (f *Flow) View(id string) (View, error) {
	rec, err := f.forms.Get(id)
	if err != nil {
		return View{}, err
	}
	return View{MountID: rec.ID, Status: rec.Status, Fields: rec.Fields}, nil
}

// Submit validates the values and, when they pass, sends them once. Validation
// failures return the view with field errors and make no call. A submission
// never starts while another is outstanding or after one succeeded.
//
// When the mount is discarded while the call is in flight, ErrUnmounted is
// returned and the outcome is dropped.
func (f *Flow) Submit(ctx context.Context, id string, in Fields) (View, error) {
	logger := observability.FromContext(ctx).With(zap.String("mount_id", id))
	in = in.Normalize()

	if errs := Validate(in); errs != nil {
		rec, err := f.forms.Get(id)
		if err != nil {
			return View{}, err
		}
		// a sent or in-flight form shows its own state, not field errors
		if err := rec.open(); err != nil {
			return View{}, err
		}
		logger.Debug("contact submission blocked by validation", zap.Int("fields", len(errs)))
		return View{MountID: id, Status: rec.Status, Fields: in, Errors: errs}, nil
	}

	rec, err := f.forms.Begin(id, in)
	if err != nil {
		return View{}, err
	}

	start := time.Now()
	code, sendErr := f.sender.Send(ctx, in)
	fields := []zap.Field{
		zap.Int("attempt", rec.Attempts),
		zap.Int("status_code", code),
		zap.Duration("latency", time.Since(start)),
	}

	rec, err = f.forms.Finish(id, sendErr == nil)
	if err != nil {
		if errors.Is(err, ErrUnmounted) {
			logger.Info("contact submission outcome dropped; form unmounted", append(fields, zap.Bool("sent", sendErr == nil))...)
		}
		return View{}, err
	}

	if sendErr != nil {
		logger.Warn("contact submission failed", append(fields, zap.Error(sendErr))...)
	} else {
		logger.Info("contact submission sent", fields...)
	}
	return View{MountID: rec.ID, Status: rec.Status, Fields: rec.Fields}, nil
}
