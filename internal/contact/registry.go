package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/tidwall/buntdb"
)

const (
	defaultMountTTL = 30 * time.Minute
	mountKeyPrefix  = "mount:"
)

var (
	// ErrUnmounted is returned for mounts that were discarded or expired.
	ErrUnmounted = errors.New("contact: form not mounted")
	// ErrBusy is returned when a submission is already outstanding for the mount.
	ErrBusy = errors.New("contact: submission in progress")
	// ErrClosed is returned once the mount has been submitted successfully.
	ErrClosed = errors.New("contact: form already sent")
	// ErrNotSubmitting is returned when an outcome arrives for a mount with no outstanding call.
	ErrNotSubmitting = errors.New("contact: no submission outstanding")
)

// Record is the form state of one mount of the contact panel.
type Record struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	Fields    Fields    `json:"fields"`
	Attempts  int       `json:"attempts,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Registry keeps form mounts in an in-memory buntdb with expiry. Every state
// change runs inside one write transaction, so transitions on a mount are
// serialized.
type Registry struct {
	db  *buntdb.DB
	ttl time.Duration
	now func() time.Time
}

// NewRegistry opens an in-memory registry. Mounts untouched for ttl are dropped.
func NewRegistry(ttl time.Duration) (*Registry, error) {
	if ttl <= 0 {
		ttl = defaultMountTTL
	}
	db, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("contact: open registry: %w", err)
	}
	return &Registry{db: db, ttl: ttl, now: time.Now}, nil
}

// Close releases the underlying store.
func (r *Registry) Close() error { return r.db.Close() }

// Mount creates an idle form and returns its id.
func (r *Registry) Mount() (string, error) {
	rec := Record{ID: ulid.Make().String(), Status: StatusIdle, UpdatedAt: r.now().UTC()}
	err := r.db.Update(func(tx *buntdb.Tx) error {
		return r.put(tx, rec)
	})
	if err != nil {
		return "", fmt.Errorf("contact: mount: %w", err)
	}
	return rec.ID, nil
}

// Exists reports whether id is a live mount.
func (r *Registry) Exists(id string) bool {
	_, err := r.Get(id)
	return err == nil
}

// Get returns the current record of a mount.
func (r *Registry) Get(id string) (Record, error) {
	var rec Record
	err := r.db.View(func(tx *buntdb.Tx) error {
		var err error
		rec, err = r.get(tx, id)
		return err
	})
	return rec, err
}

// Discard unmounts the form. Outcomes arriving later are dropped.
func (r *Registry) Discard(id string) {
	if id == "" {
		return
	}
	_ = r.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(mountKeyPrefix + id)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		}
		return err
	})
}

// open reports whether the mount accepts a new submission.
func (rec Record) open() error {
	switch rec.Status {
	case StatusSubmitting:
		return ErrBusy
	case StatusSuccess:
		return ErrClosed
	}
	return nil
}

// Begin moves an idle or failed mount to submitting and records the values
// being sent.
func (r *Registry) Begin(id string, f Fields) (Record, error) {
	var rec Record
	err := r.db.Update(func(tx *buntdb.Tx) error {
		cur, err := r.get(tx, id)
		if err != nil {
			return err
		}
		if err := cur.open(); err != nil {
			return err
		}
		cur.Status = StatusSubmitting
		cur.Fields = f
		cur.Attempts++
		cur.UpdatedAt = r.now().UTC()
		rec = cur
		return r.put(tx, cur)
	})
	return rec, err
}

// Finish records the outcome of the outstanding submission. Success clears the
// stored values; failure keeps them so the visitor can retry.
func (r *Registry) Finish(id string, sent bool) (Record, error) {
	var rec Record
	err := r.db.Update(func(tx *buntdb.Tx) error {
		cur, err := r.get(tx, id)
		if err != nil {
			return err
		}
		if cur.Status != StatusSubmitting {
			return ErrNotSubmitting
		}
		if sent {
			cur.Status = StatusSuccess
			cur.Fields = Fields{}
		} else {
			cur.Status = StatusError
		}
		cur.UpdatedAt = r.now().UTC()
		rec = cur
		return r.put(tx, cur)
	})
	return rec, err
}

func (r *Registry) get(tx *buntdb.Tx, id string) (Record, error) {
	if id == "" {
		return Record{}, ErrUnmounted
	}
	raw, err := tx.Get(mountKeyPrefix + id)
	if errors.Is(err, buntdb.ErrNotFound) {
		return Record{}, ErrUnmounted
	}
	if err != nil {
		return Record{}, fmt.Errorf("contact: read mount %s: %w", id, err)
	}
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Record{}, fmt.Errorf("contact: decode mount %s: %w", id, err)
	}
	return rec, nil
}

func (r *Registry) put(tx *buntdb.Tx, rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, _, err = tx.Set(mountKeyPrefix+rec.ID, string(b), &buntdb.SetOptions{Expires: true, TTL: r.ttl})
	return err
}
