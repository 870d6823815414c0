package crypto

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/models"
	"golang.org/x/sync/errgroup"
)

// FieldCipher applies the vault envelope to the sensitive fields of an entry:
// the password, the notes when present and every custom field flagged as
// encrypted. Each field is handled by its own goroutine and all of them are
// awaited; a failing field never cancels its siblings.
type FieldCipher struct {
	envelope *Envelope
	limit    int
}

// NewFieldCipher returns a [FieldCipher] backed by envelope.
func NewFieldCipher(envelope *Envelope) *FieldCipher {
	return &FieldCipher{
		envelope: envelope,
		limit:    runtime.NumCPU(),
	}
}

type fieldTask struct {
	name   string
	target *string
}

// sensitiveFields lists pointers into e for every field the vault protects.
// e must already be a private copy.
func sensitiveFields(e *models.Entry) []fieldTask {
	tasks := []fieldTask{{name: "password", target: &e.Password}}
	if e.Notes != nil {
		tasks = append(tasks, fieldTask{name: "notes", target: e.Notes})
	}
	for i := range e.CustomFields {
		if e.CustomFields[i].IsEncrypted {
			tasks = append(tasks, fieldTask{
				name:   "custom_field:" + e.CustomFields[i].Name,
				target: &e.CustomFields[i].Value,
			})
		}
	}
	return tasks
}

// EncryptEntry returns a copy of entry with every sensitive field sealed under
// passcode. The input is never modified so the caller keeps its plaintext.
// Any field failure fails the whole entry; the joined error names each field.
func (f *FieldCipher) EncryptEntry(ctx context.Context, entry models.Entry, passcode string) (models.Entry, error) {
	out := entry.Clone()
	tasks := sensitiveFields(&out)
	errs := make([]error, len(tasks))

	var g errgroup.Group
	g.SetLimit(f.limit)
	for i, t := range tasks {
		g.Go(func() error {
			ct, err := f.envelope.Encrypt(*t.target, passcode)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", t.name, err)
				return nil
			}
			*t.target = ct
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*FieldCipher.EncryptEntry").
			Str("entry_id", entry.ID).
			Msg("failed to encrypt entry fields")
		return models.Entry{}, err
	}
	return out, nil
}

// DecryptEntry returns a copy of entry with every sensitive field opened.
// Fields that can not be opened keep their stored value.
func (f *FieldCipher) DecryptEntry(ctx context.Context, entry models.Entry, passcode string) models.Entry {
	out := entry.Clone()
	tasks := sensitiveFields(&out)
	opened := make([]bool, len(tasks))

	var g errgroup.Group
	g.SetLimit(f.limit)
	for i, t := range tasks {
		g.Go(func() error {
			*t.target, opened[i] = f.envelope.decrypt(*t.target, passcode)
			return nil
		})
	}
	_ = g.Wait()

	fallbacks := 0
	for _, ok := range opened {
		if !ok {
			fallbacks++
		}
	}
	if fallbacks > 0 {
		logger.FromContext(ctx).Warn().
			Str("func", "*FieldCipher.DecryptEntry").
			Str("entry_id", entry.ID).
			Int("fallback_fields", fallbacks).
			Msg("some entry fields were returned as stored")
	}
	return out
}

// DecryptEntries decrypts every entry in order.
func (f *FieldCipher) DecryptEntries(ctx context.Context, entries []models.Entry, passcode string) []models.Entry {
	out := make([]models.Entry, len(entries))
	for i, e := range entries {
		out[i] = f.DecryptEntry(ctx, e, passcode)
	}
	return out
}
