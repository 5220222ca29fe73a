package bloom

import (
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/spaolacci/murmur3"
)

type impl struct {
	bitmap *bitset.BitSet
	k      int
	m      int
}

// New creates a bloomfilter holding the expected number of elements n with the
// target false positive rate p, using the memory-optimal parameters
//	M = ceil(-n * ln(p) / (ln 2)^2)
//	K = ceil(M / n * ln 2)
func New(n int, p float64) (BloomFilter, error) {
	if n <= 0 {
		return nil, ErrInvalidElementCount
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidFPRate
	}

	bits := math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	// p = 0 demands an unbounded bitmap
	if math.IsInf(bits, 1) || bits > float64(math.MaxUint32) {
		return nil, ErrTooManyBits
	}

	m := int(bits)
	// p = 1 sizes to zero bits, one bit keeps the filter well-formed
	if m == 0 {
		m = 1
	}
	k := int(math.Ceil(float64(m) / float64(n) * math.Ln2))
	if k == 0 {
		k = 1
	}

	return _new(m, k, bitset.New(uint(m))), nil
}

func _new(m, k int, bitmap *bitset.BitSet) BloomFilter {
	return &impl{
		bitmap: bitmap,
		k:      k,
		m:      m,
	}
}

// derive the K bit locations from a single murmur3 hashing pass.
// the two halves of the 128bit digest give the base position and the stride:
// location i = (h1 + i*h2) mod M
// Remarks: a small constant stride would put all K locations inside one narrow
// window and push the observed false positive rate above the requested one,
// the h2 stride spreads them over the whole bitmap
func getLocations(s string, m, k int) []int {
	h1, h2 := murmur3.Sum128([]byte(s))
	if h2 == 0 {
		h2 = 1
	}

	output := []int{}
	for i := 0; i < k; i++ {
		v := (h1 + uint64(i)*h2) % uint64(m)
		output = append(output, int(v))
	}

	return output
}

func (im *impl) Insert(s string) {
	for _, loc := range getLocations(s, im.m, im.k) {
		im.bitmap.Set(uint(loc))
	}
}

func (im *impl) InsertMany(items []string) {
	for _, s := range items {
		im.Insert(s)
	}
}

func (im *impl) Search(s string) bool {
	for _, loc := range getLocations(s, im.m, im.k) {
		if !im.bitmap.Test(uint(loc)) {
			return false
		}
	}

	return true
}

func (im *impl) SearchMany(items []string) []bool {
	output := []bool{}
	for _, s := range items {
		output = append(output, im.Search(s))
	}

	return output
}

func (im *impl) Clear() {
	im.bitmap.ClearAll()
}

func (im *impl) Merge(g BloomFilter) error {
	if im.k != g.K() || im.m != g.M() {
		return ErrSizeMismatch
	}
	g1, ok := g.(*impl)
	if !ok {
		return ErrImplMismatch
	}

	im.bitmap.InPlaceUnion(g1.bitmap)
	return nil
}

func (im *impl) Clone() BloomFilter {
	return _new(im.m, im.k, im.bitmap.Clone())
}

func (im *impl) GetAppxCount() float64 {
	count := int(im.bitmap.Count())

	// sentinal to avoid divide-by-zero
	if count == im.m {
		count = im.m - 1
	}

	m := float64(im.m)
	k := float64(im.k)
	c := float64(count)

	// reference: https://en.wikipedia.org/wiki/Bloom_filter#Approximating_the_number_of_items_in_a_Bloom_filter
	return -1 * m / k * math.Log(1-(c/m))
}

func (im *impl) FillRatio() float64 {
	return float64(im.bitmap.Count()) / float64(im.m)
}

func (im *impl) K() int {
	return im.k
}
func (im *impl) M() int {
	return im.m
}
