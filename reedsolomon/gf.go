// Package reedsolomon implements Reed-Solomon error correction coding over
// binary extension fields and prime fields.
package reedsolomon

import "fmt"

// GenericGF represents a Galois Field for Reed-Solomon coding. Binary fields
// GF(2^n) are built from a primitive polynomial, prime fields GF(p) from a
// primitive element.
type GenericGF struct {
	expTable      []int
	logTable      []int
	zero          *GenericGFPoly
	one           *GenericGFPoly
	size          int
	primitive     int
	generatorBase int
	prime         bool
}

// Pre-defined Galois Fields.
var (
	// DataMatrixField256 is GF(256) with x^8 + x^5 + x^3 + x^2 + 1.
	DataMatrixField256 = NewGenericGF(0x012D, 256, 1)
	// PDF417Field929 is GF(929) generated by 3.
	PDF417Field929 = NewPrimeGF(929, 3, 1)
)

// NewGenericGF creates a GF(size) using the given primitive polynomial.
// size must be a power of two.
func NewGenericGF(primitive, size, generatorBase int) *GenericGF {
	gf := &GenericGF{
		primitive:     primitive,
		size:          size,
		generatorBase: generatorBase,
		expTable:      make([]int, size),
		logTable:      make([]int, size),
	}

	x := 1
	for i := 0; i < size; i++ {
		gf.expTable[i] = x
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	gf.init()
	return gf
}

// NewPrimeGF creates GF(modulus) for a prime modulus. generator must be a
// primitive element of the field.
func NewPrimeGF(modulus, generator, generatorBase int) *GenericGF {
	gf := &GenericGF{
		primitive:     generator,
		size:          modulus,
		generatorBase: generatorBase,
		expTable:      make([]int, modulus),
		logTable:      make([]int, modulus),
		prime:         true,
	}

	x := 1
	for i := 0; i < modulus; i++ {
		gf.expTable[i] = x
		x = x * generator % modulus
	}
	gf.init()
	return gf
}

func (gf *GenericGF) init() {
	for i := 0; i < gf.size-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}
	gf.zero = newGenericGFPoly(gf, []int{0})
	gf.one = newGenericGFPoly(gf, []int{1})
}

// Zero returns the zero polynomial.
func (gf *GenericGF) Zero() *GenericGFPoly { return gf.zero }

// One returns the one polynomial.
func (gf *GenericGF) One() *GenericGFPoly { return gf.one }

// BuildMonomial returns coefficient * x^degree.
func (gf *GenericGF) BuildMonomial(degree, coefficient int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return gf.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newGenericGFPoly(gf, coefficients)
}

// Add returns a + b in this field.
func (gf *GenericGF) Add(a, b int) int {
	if gf.prime {
		return (a + b) % gf.size
	}
	return a ^ b
}

// Subtract returns a - b in this field.
func (gf *GenericGF) Subtract(a, b int) int {
	if gf.prime {
		return (gf.size + a - b) % gf.size
	}
	return a ^ b
}

// Negate returns -a in this field.
func (gf *GenericGF) Negate(a int) int {
	return gf.Subtract(0, a)
}

// Exp returns the generator raised to a.
func (gf *GenericGF) Exp(a int) int {
	return gf.expTable[a]
}

// Log returns the discrete logarithm of a.
func (gf *GenericGF) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return gf.logTable[a]
}

// Inverse returns the multiplicative inverse of a.
func (gf *GenericGF) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return gf.expTable[gf.size-gf.logTable[a]-1]
}

// Multiply returns a * b in this field.
func (gf *GenericGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Size returns the size of the field.
func (gf *GenericGF) Size() int { return gf.size }

// GeneratorBase returns the generator base.
func (gf *GenericGF) GeneratorBase() int { return gf.generatorBase }

// String returns a string representation.
func (gf *GenericGF) String() string {
	if gf.prime {
		return fmt.Sprintf("GF(%d,g=%d)", gf.size, gf.primitive)
	}
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
