// Package record provides record lifecycle management and
// comparator-based ordering for RecordKit.
//
// A Record is a fixed-shape entity with a numeric id, a bounded-length
// name and a floating-point value. Records are explicitly owned: a
// Factory creates them, the owner presents them any number of times,
// and the owner releases them exactly once.
//
// # Lifecycle
//
// A record moves through two states:
//
//	{absent} --New--> {live} --Release--> {released}
//
// Present is only valid on a live record. Nil handles are tolerated
// everywhere: presenting or releasing a nil record is a silent no-op,
// so a failed New can flow straight into cleanup code. Operating on a
// released record is a caller contract violation; rather than leaving
// it undefined, the package reports ErrReleased and counts the fault.
//
// # Name capacity
//
// Name storage is fixed at NameCapacity bytes. Input longer than
// MaxNameLen is silently truncated, never rejected. Truncation is a
// tolerance policy, not an error.
//
// # Ordering
//
// A Comparator is a pure three-way ordering function over two records.
// ByID is the standard ordering; Sort applies any comparator to a
// collection in place. The sort is not stable, so the relative order of
// records with equal ids is unspecified.
//
// # Usage
//
// The usual sequence is create-all, sort, present-all, release-all:
//
//	factory := record.NewFactory(record.FactoryConfig{})
//
//	recs := make([]*record.Record, 0, 3)
//	for _, id := range []int{3, 1, 2} {
//	    r, err := factory.New(id, "item", 1.0)
//	    if err != nil {
//	        return err
//	    }
//	    recs = append(recs, r)
//	}
//
//	record.SortByID(recs)
//
//	for _, r := range recs {
//	    if err := r.Present(os.Stdout); err != nil {
//	        return err
//	    }
//	}
//	for _, r := range recs {
//	    if err := r.Release(); err != nil {
//	        return err
//	    }
//	}
//
// Use wraps the create/release pair for scope-bound records.
//
// # Error Handling
//
// New returns ErrAllocFailed when storage cannot be obtained; callers
// check before use. Present and Release return ErrReleased on a
// released record. All other operations are total under the stated
// preconditions.
//
// # Thread Safety
//
// Records and factories are not synchronized. Each record is
// independent, but a single record, and any collection passed to Sort,
// must not be accessed concurrently.
package record
