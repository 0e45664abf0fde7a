package cooccur

import "math"

// DefaultEpsilon is the add-ε smoothing applied to edge counts
const DefaultEpsilon = 0.1

// Calculator scores how strongly two keywords are associated beyond what
// their individual document frequencies predict. The score is attached to
// edges for renderers; it never decides which edges are kept.
type Calculator struct {
	epsilon float64
}

// NewCalculator creates a scorer; epsilon <= 0 uses DefaultEpsilon.
func NewCalculator(epsilon float64) *Calculator {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &Calculator{epsilon: epsilon}
}

// PMI compares the smoothed number of articles sharing both keywords
// (nAB) with the number expected if they appeared independently, given
// their article counts nA, nB out of n:
//
//	log((nAB+ε)·n / ((nA+ε)(nB+ε)))
//
// Positive means the keywords appear together more often than chance.
func (c *Calculator) PMI(nAB, nA, nB, n int64) float64 {
	if n == 0 {
		return 0
	}
	joint := (float64(nAB) + c.epsilon) * float64(n)
	expected := (float64(nA) + c.epsilon) * (float64(nB) + c.epsilon)
	return math.Log(joint / expected)
}

// NPMI rescales PMI by -log of the joint article share so edges from
// corpora of different sizes are comparable. Pairs that never share an
// article score 0; the result is clamped to [-1, 1].
func (c *Calculator) NPMI(nAB, nA, nB, n int64) float64 {
	if n == 0 || nAB == 0 {
		return 0
	}
	logJoint := math.Log((float64(nAB) + c.epsilon) / float64(n))
	if logJoint == 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, c.PMI(nAB, nA, nB, n)/-logJoint))
}
