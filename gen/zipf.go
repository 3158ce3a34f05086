package gen

import (
	"math"
	"math/rand/v2"
)

// DefaultZipfTheta is the default skew parameter, taken from YCSB.
const DefaultZipfTheta = 0.99

// Zipfian generates zipfian-distributed random numbers skewed toward the
// lower integers: 0 is the most popular, 1 the next most popular, and so on.
//
// It implements the core algorithm from YCSB's ZipfianGenerator, which in
// turn uses the algorithm from "Quickly Generating Billion-Record Synthetic
// Databases", Jim Gray et al, SIGMOD 1994.
type Zipfian struct {
	rng *rand.Rand

	n     uint64  // range of numbers to be generated
	theta float64 // skew parameter, 0 < theta < 1
	alpha float64 // intermediate result used for generation
	zetan float64 // intermediate result used for generation
	eta   float64 // intermediate result used for generation
}

// NewZipfian constructs a generator producing numbers in [0, n).
// Construction may be expensive if n is large (the zeta sum is O(n)).
//
// Parameters:
//   - n: Exclusive upper bound of the generated range
//   - theta: Skew in (0, 1); values closer to 1 skew harder toward the low
//     integers. Use DefaultZipfTheta when in doubt.
func NewZipfian(n uint64, theta float64) *Zipfian {
	zetan := zeta(n, theta)

	return &Zipfian{
		rng:   rand.New(rand.NewPCG(0, 0)),
		n:     n,
		theta: theta,
		alpha: 1 / (1 - theta),
		zetan: zetan,
		eta:   (1 - math.Pow(2.0/float64(n), 1-theta)) / (1 - zeta(2, theta)/zetan),
	}
}

// Next returns the next zipfian-distributed number in [0, n).
func (z *Zipfian) Next() uint64 {
	u := z.rng.Float64()
	uz := u * z.zetan

	if uz < 1 {
		return 0
	}
	if uz < 1+math.Pow(0.5, z.theta) {
		return 1
	}

	return uint64(float64(z.n) * math.Pow(z.eta*u-z.eta+1.0, z.alpha))
}

// Reset reseeds the generator's randomness without recomputing the
// distribution constants.
func (z *Zipfian) Reset(seed uint64) {
	z.rng = rand.New(rand.NewPCG(seed, seed))
}

// zeta returns the nth harmonic number with parameter theta, H_{n,theta}.
func zeta(n uint64, theta float64) float64 {
	sum := 0.0
	for i := uint64(0); i < n; i++ {
		sum += 1.0 / math.Pow(float64(i+1), theta)
	}

	return sum
}
