package record

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
)

const (
	// NameCapacity is the fixed storage reserved for a record name,
	// matching the original 50-byte layout (49 usable bytes plus the
	// terminator slot).
	NameCapacity = 50

	// MaxNameLen is the longest name a record stores. Longer input is
	// truncated to this many bytes, never rejected. Truncation is by
	// byte, so a multi-byte rune straddling the boundary is cut.
	MaxNameLen = NameCapacity - 1
)

// Errors
var (
	ErrAllocFailed = &RecordError{"record allocation failed"}
	ErrReleased    = &RecordError{"record already released"}
)

// RecordError represents a record lifecycle error
type RecordError struct {
	Message string
}

func (e *RecordError) Error() string {
	return e.Message
}

// Record represents a fixed-shape entity: a numeric id, a bounded-length
// name and a floating-point value. A Record is live from creation until
// Release flips it to released; operations on a released record report
// ErrReleased instead of touching reclaimed state.
type Record struct {
	id       int
	name     string
	value    float64
	handle   ksuid.KSUID // diagnostic tag carried in logs and faults
	released bool
	log      zerolog.Logger
}

// ID returns the record's ordering key. Duplicate ids across records are
// permitted.
func (r *Record) ID() int { return r.id }

// Name returns the stored (possibly truncated) name.
func (r *Record) Name() string { return r.name }

// Value returns the floating-point payload.
func (r *Record) Value() float64 { return r.value }

// Handle returns the record's diagnostic handle tag.
func (r *Record) Handle() ksuid.KSUID { return r.handle }

// Released reports whether the record has been released.
func (r *Record) Released() bool { return r.released }

// AllocFunc obtains backing storage for one record. The default
// allocator never fails; tests inject failing ones.
type AllocFunc func() (*Record, error)

// FactoryConfig holds configuration for a record factory
type FactoryConfig struct {
	Alloc  AllocFunc      // storage allocator (nil = heap allocation)
	Logger zerolog.Logger // lifecycle event logger (zero value = no-op)
}

// Factory creates records. The zero-config factory allocates from the
// heap and logs nowhere.
type Factory struct {
	alloc AllocFunc
	log   zerolog.Logger
}

// NewFactory creates a new record factory
func NewFactory(config FactoryConfig) *Factory {
	alloc := config.Alloc
	if alloc == nil {
		alloc = func() (*Record, error) { return new(Record), nil }
	}
	return &Factory{
		alloc: alloc,
		log:   config.Logger,
	}
}

// New creates a live, exclusively-owned record. Names longer than
// MaxNameLen are silently truncated. On allocation failure it returns
// (nil, ErrAllocFailed) — never a constructed-but-invalid record. The
// caller owns the result and must Release it exactly once.
func (f *Factory) New(id int, name string, value float64) (*Record, error) {
	r, err := f.alloc()
	if err != nil {
		metrics.allocFailures.Inc()
		f.log.Error().Err(err).Int("id", id).Msg("record allocation failed")
		return nil, ErrAllocFailed
	}

	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
		metrics.nameTruncations.Inc()
	}

	r.id = id
	r.name = name
	r.value = value
	r.handle = ksuid.New()
	r.released = false
	r.log = f.log

	metrics.recordsCreated.Inc()
	f.log.Debug().
		Str("handle", r.handle.String()).
		Int("id", id).
		Msg("record created")

	return r, nil
}

var defaultFactory = NewFactory(FactoryConfig{})

// New creates a record using the package default factory.
func New(id int, name string, value float64) (*Record, error) {
	return defaultFactory.New(id, name, value)
}

// Present writes the record's formatted text to w as a single line.
// Presenting a nil record is a no-op, not an error. Presenting a
// released record returns ErrReleased. Present is read-only and may be
// called any number of times while the record is live.
func (r *Record) Present(w io.Writer) error {
	if r == nil {
		return nil
	}
	if r.released {
		metrics.lifecycleFaults.WithLabelValues(faultPresentReleased).Inc()
		return ErrReleased
	}

	if _, err := fmt.Fprintf(w, "%s\n", r.String()); err != nil {
		return err
	}

	metrics.presentations.Inc()
	return nil
}

// String returns the record's presentation text without a trailing
// newline.
func (r *Record) String() string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("id=%d name=%q value=%.2f", r.id, r.name, r.value)
}

// Release reclaims the record's storage, exactly once. Releasing a nil
// record is a no-op. A second Release on the same record returns
// ErrReleased instead of corrupting state.
func (r *Record) Release() error {
	if r == nil {
		return nil
	}
	if r.released {
		metrics.lifecycleFaults.WithLabelValues(faultDoubleRelease).Inc()
		return ErrReleased
	}

	r.released = true
	// Drop the payload so stale reads surface during debugging. The id
	// and handle stay for fault diagnostics.
	r.name = ""
	r.value = 0

	metrics.recordsReleased.Inc()
	r.log.Debug().
		Str("handle", r.handle.String()).
		Int("id", r.id).
		Msg("record released")

	return nil
}

// Use creates a record, hands it to fn, and releases it when fn returns.
// The record never outlives the call: release happens exactly once on
// every path. fn must not retain the record.
func Use(f *Factory, id int, name string, value float64, fn func(*Record) error) error {
	r, err := f.New(id, name, value)
	if err != nil {
		return err
	}

	if err := fn(r); err != nil {
		r.Release() //nolint:errcheck // fn's error takes precedence
		return err
	}

	return r.Release()
}
