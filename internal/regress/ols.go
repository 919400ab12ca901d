// Package regress fits ordinary least squares models of season wins on the
// four-factors differentials.
package regress

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Predictor identifies one of the four differential regressors.
type Predictor string

const (
	EFGDiff Predictor = "efg_diff"
	TODiff  Predictor = "to_diff"
	RebDiff Predictor = "reb_diff"
	FTRDiff Predictor = "ftr_diff"
)

// AllPredictors is the full four-factor model specification.
var AllPredictors = []Predictor{EFGDiff, TODiff, RebDiff, FTRDiff}

// Observation is one team's row: the four differentials and the win total.
type Observation struct {
	Team    string
	EFGDiff float64
	TODiff  float64
	RebDiff float64
	FTRDiff float64
	Wins    float64
}

func (o *Observation) value(p Predictor) (float64, bool) {
	switch p {
	case EFGDiff:
		return o.EFGDiff, true
	case TODiff:
		return o.TODiff, true
	case RebDiff:
		return o.RebDiff, true
	case FTRDiff:
		return o.FTRDiff, true
	}
	return 0, false
}

// Dataset is the full team-by-team regression input.
type Dataset struct {
	Rows []Observation
}

// RegressionError reports a model that cannot be fit: too few observations or
// a degenerate design matrix.
type RegressionError struct {
	Reason string
}

func (e *RegressionError) Error() string {
	return "regression: " + e.Reason
}

// Coefficient carries one fitted term with its inference statistics.
type Coefficient struct {
	Name     string  `json:"name"`
	Estimate float64 `json:"estimate"`
	StdErr   float64 `json:"std_err"`
	TStat    float64 `json:"t_stat"`
	PValue   float64 `json:"p_value"`
}

// Result is a fitted OLS model. Coefficients[0] is the intercept; the rest
// follow the predictor order given to Fit.
type Result struct {
	Predictors   []Predictor   `json:"predictors"`
	Coefficients []Coefficient `json:"coefficients"`
	RSquared     float64       `json:"r_squared"`
	AdjRSquared  float64       `json:"adj_r_squared"`
	N            int           `json:"n"`
	ResidualDF   int           `json:"residual_df"`
}

// Fit solves Wins ~ intercept + predictors by QR decomposition and reports
// per-coefficient standard errors, t statistics, and two-tailed p values on
// n-p-1 residual degrees of freedom. With no predictors given it fits the full
// four-factor model. Any subset of the four predictors may be requested.
func Fit(ds Dataset, predictors ...Predictor) (*Result, error) {
	if len(predictors) == 0 {
		predictors = AllPredictors
	}

	n := len(ds.Rows)
	p := len(predictors)
	if n < p+2 {
		return nil, &RegressionError{Reason: fmt.Sprintf(
			"%d observations cannot support %d predictors plus intercept with residual degrees of freedom", n, p)}
	}

	cols := make([][]float64, p)
	for j, pred := range predictors {
		col := make([]float64, n)
		for i := range ds.Rows {
			v, ok := ds.Rows[i].value(pred)
			if !ok {
				return nil, &RegressionError{Reason: fmt.Sprintf("unknown predictor %q", pred)}
			}
			col[i] = v
		}
		if stat.Variance(col, nil) == 0 {
			return nil, &RegressionError{Reason: fmt.Sprintf("predictor %s has zero variance", pred)}
		}
		cols[j] = col
	}

	ys := make([]float64, n)
	for i := range ds.Rows {
		ys[i] = ds.Rows[i].Wins
	}
	if stat.Variance(ys, nil) == 0 {
		return nil, &RegressionError{Reason: "response has zero variance"}
	}

	design := mat.NewDense(n, p+1, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
		for j := 0; j < p; j++ {
			design.Set(i, j+1, cols[j][i])
		}
	}
	response := mat.NewDense(n, 1, ys)

	var qr mat.QR
	qr.Factorize(design)
	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, response); err != nil {
		return nil, &RegressionError{Reason: "design matrix is rank deficient: " + err.Error()}
	}

	var fitted mat.Dense
	fitted.Mul(design, &beta)

	meanY := stat.Mean(ys, nil)
	var rss, tss float64
	for i := 0; i < n; i++ {
		resid := ys[i] - fitted.At(i, 0)
		rss += resid * resid
		dev := ys[i] - meanY
		tss += dev * dev
	}

	df := n - p - 1
	sigma2 := rss / float64(df)

	var xtx, xtxInv mat.Dense
	xtx.Mul(design.T(), design)
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, &RegressionError{Reason: "design matrix is singular: " + err.Error()}
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}

	result := &Result{
		Predictors: predictors,
		RSquared:   1 - rss/tss,
		N:          n,
		ResidualDF: df,
	}
	result.AdjRSquared = 1 - (1-result.RSquared)*float64(n-1)/float64(df)

	names := make([]string, 0, p+1)
	names = append(names, "intercept")
	for _, pred := range predictors {
		names = append(names, string(pred))
	}

	for j := 0; j <= p; j++ {
		est := beta.At(j, 0)
		se := math.Sqrt(sigma2 * xtxInv.At(j, j))
		t := est / se
		result.Coefficients = append(result.Coefficients, Coefficient{
			Name:     names[j],
			Estimate: est,
			StdErr:   se,
			TStat:    t,
			PValue:   2 * (1 - tDist.CDF(math.Abs(t))),
		})
	}

	return result, nil
}

// Summary renders a fixed-width coefficient table for display.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "OLS: wins ~ %s\n", joinPredictors(r.Predictors))
	fmt.Fprintf(&b, "n=%d  residual df=%d  R²=%.4f  adj. R²=%.4f\n", r.N, r.ResidualDF, r.RSquared, r.AdjRSquared)
	fmt.Fprintf(&b, "%-12s %12s %12s %10s %10s\n", "term", "estimate", "std err", "t", "p>|t|")
	for _, c := range r.Coefficients {
		fmt.Fprintf(&b, "%-12s %12.4f %12.4f %10.3f %10.4f\n", c.Name, c.Estimate, c.StdErr, c.TStat, c.PValue)
	}
	return b.String()
}

func joinPredictors(preds []Predictor) string {
	parts := make([]string, len(preds))
	for i, p := range preds {
		parts[i] = string(p)
	}
	return strings.Join(parts, " + ")
}
