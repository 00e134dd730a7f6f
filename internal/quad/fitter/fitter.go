// Package fitter implements CenterFitter, an incremental normal-
// equations solver that estimates the point best explained by a set of
// weighted rays as lying on each ray's line.
package fitter

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"quadloco/internal/quad/geom"
)

// Epsilon bounds the determinant below which the normal matrix is
// treated as singular.
const Epsilon = 1.0e-12

// CenterFitter incrementally builds the 2x2 symmetric normal matrix
// AtA and right-hand side AtB for the over-determined system "point on
// the line through ray.start whose normal is ray.direction".
type CenterFitter struct {
	ata00, ata01, ata11 float64
	atb0, atb1          float64
	numObs              int
}

// New constructs an empty CenterFitter.
func New() *CenterFitter {
	return &CenterFitter{}
}

// AddRay folds ray into the normal equations with weight w.
func (f *CenterFitter) AddRay(ray geom.Ray, w float64) {
	d := ray.Direction
	b := d.Dot(ray.Start.Vector2)

	f.ata00 += w * d.Row * d.Row
	f.ata01 += w * d.Row * d.Col
	f.ata11 += w * d.Col * d.Col

	f.atb0 += w * d.Row * b
	f.atb1 += w * d.Col * b

	f.numObs++
}

// NumObservations returns the number of rays added so far.
func (f *CenterFitter) NumObservations() int {
	return f.numObs
}

// Result is the fitted center plus its uncertainty.
type Result struct {
	Center geom.Spot
	Sigma  SpotSigma
}

// SpotSigma is the scalar uncertainty of a fitted spot, derived from
// the largest eigenvalue of the fit's covariance matrix.
type SpotSigma struct {
	Value float64
	Valid bool
}

// Invalid returns an invalid SpotSigma.
func Invalid() SpotSigma {
	return SpotSigma{}
}

// Solve closes the normal equations by solving AtA*x = AtB. If AtA's
// determinant's absolute value is at or below Epsilon, it returns an
// invalid result.
func (f *CenterFitter) Solve() (Result, bool) {
	ata := mat.NewSymDense(2, []float64{f.ata00, f.ata01, f.ata01, f.ata11})
	atb := mat.NewVecDense(2, []float64{f.atb0, f.atb1})

	if math.Abs(mat.Det(ata)) <= Epsilon {
		return Result{}, false
	}

	var x mat.VecDense
	if err := x.SolveVec(ata, atb); err != nil {
		return Result{}, false
	}

	var covar mat.Dense
	if err := covar.Inverse(ata); err != nil {
		return Result{}, false
	}

	return Result{
		Center: geom.NewSpot(x.AtVec(0), x.AtVec(1)),
		Sigma:  sigmaFromCovar(&covar),
	}, true
}

// sigmaFromCovar returns sqrt(lambda_max) of the 2x2 covariance matrix,
// via its eigendecomposition.
func sigmaFromCovar(covar *mat.Dense) SpotSigma {
	sym := mat.NewSymDense(2, []float64{
		covar.At(0, 0), covar.At(0, 1),
		covar.At(1, 0), covar.At(1, 1),
	})

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return Invalid()
	}

	values := eig.Values(nil)
	lamBig := values[len(values)-1]
	if lamBig < 0 {
		return Invalid()
	}
	return SpotSigma{Value: math.Sqrt(lamBig), Valid: true}
}
