package regress

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

// exactDataset builds rows where Wins is an exact linear function of all four
// predictors with no noise.
func exactDataset() Dataset {
	efg := []float64{0.05, -0.03, 0.01, 0.08, -0.06, 0.02, -0.01, 0.04, 0.00, -0.04}
	to := []float64{-0.02, 0.01, 0.03, -0.01, 0.02, -0.03, 0.00, 0.015, -0.025, 0.005}
	reb := []float64{0.04, -0.02, 0.00, 0.03, -0.05, 0.01, 0.02, -0.01, 0.05, -0.03}
	ftr := []float64{0.10, -0.05, 0.02, 0.07, -0.08, 0.04, -0.02, 0.01, 0.06, -0.09}

	var ds Dataset
	for i := range efg {
		wins := 20 + 100*efg[i] - 50*to[i] + 30*reb[i] + 10*ftr[i]
		ds.Rows = append(ds.Rows, Observation{
			Team:    "t" + string(rune('a'+i)),
			EFGDiff: efg[i],
			TODiff:  to[i],
			RebDiff: reb[i],
			FTRDiff: ftr[i],
			Wins:    wins,
		})
	}
	return ds
}

func TestFitRecoversExactModel(t *testing.T) {
	result, err := Fit(exactDataset())
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	want := []struct {
		name string
		coef float64
	}{
		{"intercept", 20},
		{string(EFGDiff), 100},
		{string(TODiff), -50},
		{string(RebDiff), 30},
		{string(FTRDiff), 10},
	}

	if len(result.Coefficients) != len(want) {
		t.Fatalf("got %d coefficients, want %d", len(result.Coefficients), len(want))
	}
	for i, w := range want {
		c := result.Coefficients[i]
		if c.Name != w.name {
			t.Errorf("coefficient %d name = %q, want %q", i, c.Name, w.name)
		}
		if math.Abs(c.Estimate-w.coef) > 1e-6 {
			t.Errorf("%s estimate = %.10f, want %.10f", c.Name, c.Estimate, w.coef)
		}
	}

	if math.Abs(result.RSquared-1) > 1e-9 {
		t.Errorf("RSquared = %.12f, want 1", result.RSquared)
	}
	if result.N != 10 || result.ResidualDF != 5 {
		t.Errorf("N = %d, ResidualDF = %d, want 10 and 5", result.N, result.ResidualDF)
	}
}

func TestFitSinglePredictorMatchesClosedForm(t *testing.T) {
	xs := []float64{0.05, -0.03, 0.01, 0.08, -0.06, 0.02, -0.01}
	ys := []float64{24, 12, 18, 27, 9, 20, 15}

	var ds Dataset
	for i := range xs {
		ds.Rows = append(ds.Rows, Observation{EFGDiff: xs[i], Wins: ys[i]})
	}

	result, err := Fit(ds, EFGDiff)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.Abs(result.Coefficients[0].Estimate-alpha) > 1e-9 {
		t.Errorf("intercept = %.12f, closed form gives %.12f", result.Coefficients[0].Estimate, alpha)
	}
	if math.Abs(result.Coefficients[1].Estimate-beta) > 1e-9 {
		t.Errorf("slope = %.12f, closed form gives %.12f", result.Coefficients[1].Estimate, beta)
	}
	if r2 := stat.RSquared(xs, ys, nil, alpha, beta); math.Abs(result.RSquared-r2) > 1e-9 {
		t.Errorf("RSquared = %.12f, closed form gives %.12f", result.RSquared, r2)
	}

	for _, c := range result.Coefficients {
		if c.PValue < 0 || c.PValue > 1 || math.IsNaN(c.PValue) {
			t.Errorf("%s p-value = %v, want within [0,1]", c.Name, c.PValue)
		}
		if c.StdErr <= 0 {
			t.Errorf("%s std err = %v, want > 0", c.Name, c.StdErr)
		}
	}
}

func TestFitPredictorSubset(t *testing.T) {
	result, err := Fit(exactDataset(), EFGDiff, TODiff)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if len(result.Coefficients) != 3 {
		t.Fatalf("got %d coefficients, want 3", len(result.Coefficients))
	}
	if result.Coefficients[1].Name != string(EFGDiff) || result.Coefficients[2].Name != string(TODiff) {
		t.Errorf("coefficient names = %q, %q", result.Coefficients[1].Name, result.Coefficients[2].Name)
	}
	// The omitted predictors carried real signal, so the reduced model cannot
	// explain everything.
	if result.RSquared >= 1 {
		t.Errorf("RSquared = %v, want < 1 for the reduced model", result.RSquared)
	}
}

func TestFitZeroVariancePredictor(t *testing.T) {
	var ds Dataset
	for i := 0; i < 8; i++ {
		ds.Rows = append(ds.Rows, Observation{
			EFGDiff: 0.1, // constant
			Wins:    float64(10 + i),
		})
	}

	_, err := Fit(ds, EFGDiff)
	var regErr *RegressionError
	if !errors.As(err, &regErr) {
		t.Fatalf("Fit() error = %v, want RegressionError", err)
	}
}

func TestFitInsufficientObservations(t *testing.T) {
	ds := Dataset{Rows: exactDataset().Rows[:4]}

	_, err := Fit(ds)
	var regErr *RegressionError
	if !errors.As(err, &regErr) {
		t.Fatalf("Fit() error = %v, want RegressionError", err)
	}
}

func TestFitZeroVarianceResponse(t *testing.T) {
	var ds Dataset
	for i := 0; i < 8; i++ {
		ds.Rows = append(ds.Rows, Observation{
			EFGDiff: float64(i) * 0.01,
			Wins:    17,
		})
	}

	_, err := Fit(ds, EFGDiff)
	var regErr *RegressionError
	if !errors.As(err, &regErr) {
		t.Fatalf("Fit() error = %v, want RegressionError", err)
	}
}

func TestFitUnknownPredictor(t *testing.T) {
	_, err := Fit(exactDataset(), Predictor("pace_diff"))
	var regErr *RegressionError
	if !errors.As(err, &regErr) {
		t.Fatalf("Fit() error = %v, want RegressionError", err)
	}
}
