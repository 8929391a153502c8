package reedsolomon

import "sync"

// Encoder performs systematic Reed-Solomon encoding. The generator polynomial
// of degree k is the product of (x - g^i) for i = base .. base+k-1.
type Encoder struct {
	field            *GenericGF
	mu               sync.Mutex
	cachedGenerators []*GenericGFPoly
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *GenericGF) *Encoder {
	e := &Encoder{
		field:            field,
		cachedGenerators: make([]*GenericGFPoly, 1),
	}
	e.cachedGenerators[0] = newGenericGFPoly(field, []int{1})
	return e
}

// Generator returns the generator polynomial of the given degree.
func (e *Encoder) Generator(degree int) *GenericGFPoly {
	e.mu.Lock()
	defer e.mu.Unlock()
	if degree < len(e.cachedGenerators) {
		return e.cachedGenerators[degree]
	}
	lastGenerator := e.cachedGenerators[len(e.cachedGenerators)-1]
	for d := len(e.cachedGenerators); d <= degree; d++ {
		root := e.field.Exp(d - 1 + e.field.GeneratorBase())
		nextGenerator := lastGenerator.MultiplyPoly(
			newGenericGFPoly(e.field, []int{1, e.field.Negate(root)}))
		e.cachedGenerators = append(e.cachedGenerators, nextGenerator)
		lastGenerator = nextGenerator
	}
	return e.cachedGenerators[degree]
}

// Encode writes ecCount error-correction codewords after the data in
// toEncode. toEncode must have space for data + ecCount values. The result
// is divisible by the generator polynomial.
func (e *Encoder) Encode(toEncode []int, ecCount int) {
	if ecCount == 0 {
		panic("reedsolomon: no error correction codewords")
	}
	dataCount := len(toEncode) - ecCount
	if dataCount <= 0 {
		panic("reedsolomon: no data codewords provided")
	}
	generator := e.Generator(ecCount)
	infoCoefficients := make([]int, dataCount)
	copy(infoCoefficients, toEncode[:dataCount])
	info := newGenericGFPoly(e.field, infoCoefficients)
	info = info.MultiplyByMonomial(ecCount, 1)
	remainder := info.Divide(generator)[1]
	coefficients := remainder.Coefficients()
	numZero := ecCount - len(coefficients)
	for i := 0; i < numZero; i++ {
		toEncode[dataCount+i] = 0
	}
	for i, c := range coefficients {
		toEncode[dataCount+numZero+i] = e.field.Negate(c)
	}
}

// Check reports whether codewords, the last ecCount of which are error
// correction codewords, form a valid code word.
func (e *Encoder) Check(codewords []int, ecCount int) bool {
	poly := newGenericGFPoly(e.field, append([]int(nil), codewords...))
	for i := 0; i < ecCount; i++ {
		if poly.EvaluateAt(e.field.Exp(i+e.field.GeneratorBase())) != 0 {
			return false
		}
	}
	return true
}
