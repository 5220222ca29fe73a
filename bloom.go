/*
	this package provides a bloomfilter library with optimal parameter sizing
	Remarks: no operation here is thread safe. If concurrent access is needed,
	the caller should serialize all Insert / Search / Clear with a single lock
*/

package bloom

import (
	"errors"
)

var ErrInvalidElementCount = errors.New(`the expected element count must be greater than zero`)
var ErrInvalidFPRate = errors.New(`the false positive rate must be between zero and one`)
var ErrTooManyBits = errors.New(`the requested false positive rate needs more bits than supported`)
var ErrSizeMismatch = errors.New(`mismatched M and K during Merge() `)
var ErrImplMismatch = errors.New(`mismatched implementation during Merge() `)

type BloomFilter interface {
	// Warning: only the Bloom with same K and M is mergeable.
	// Warning: if two BloomFilter are of different implementation, they may not be mergeable
	// otherwise, error will be raised
	Merge(g BloomFilter) error
	Clone() BloomFilter

	Insert(s string)
	// insert every item in the given order, equivalent to repeated Insert calls
	InsertMany(items []string)

	// false means the item is definitely absent.
	// true means the item is possibly present, with the false positive rate given to New()
	Search(s string) bool
	// search every item in the given order, the result keeps the input ordering
	SearchMany(items []string) []bool

	// reset every bit to zero, K and M are unchanged
	Clear()

	// return the appx number of unique string
	GetAppxCount() float64
	// the fraction of bits that is marked
	FillRatio() float64

	K() int
	M() int
}
