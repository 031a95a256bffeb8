// Package stats computes descriptive statistics over model columns.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/specialistvlad/csvexplore/internal/model"
)

// Numeric summarizes a numeric column. Count excludes missing cells; the
// remaining fields are NaN when Count is zero.
type Numeric struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Categorical summarizes a text column.
type Categorical struct {
	Count  int
	Unique int
	Top    string
	Freq   int
}

// ColumnStats is the description of one column. Exactly one of Numeric and
// Categorical is set, matching Kind.
type ColumnStats struct {
	Name        string
	Kind        model.Kind
	Rows        int
	Numeric     *Numeric
	Categorical *Categorical
}

// Count returns the number of non-missing cells.
func (s ColumnStats) Count() int {
	if s.Numeric != nil {
		return s.Numeric.Count
	}
	if s.Categorical != nil {
		return s.Categorical.Count
	}
	return 0
}

// DescribeColumn computes the statistics for col.
func DescribeColumn(col *model.Column) ColumnStats {
	cs := ColumnStats{Name: col.Name, Kind: col.Kind, Rows: col.Len()}
	if col.Kind == model.Number {
		n := DescribeNumbers(col.Numbers())
		cs.Numeric = &n
		return cs
	}
	c := describeText(col)
	cs.Categorical = &c
	return cs
}

// DescribeNumbers computes count, mean, sample standard deviation, min, max
// and quartiles of xs. xs is not modified.
func DescribeNumbers(xs []float64) Numeric {
	n := len(xs)
	if n == 0 {
		nan := math.NaN()
		return Numeric{Mean: nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan}
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if n == 1 {
		std = math.NaN()
	}

	return Numeric{
		Count: n,
		Mean:  mean,
		Std:   std,
		Min:   floats.Min(sorted),
		Q25:   Quantile(sorted, 0.25),
		Q50:   Quantile(sorted, 0.50),
		Q75:   Quantile(sorted, 0.75),
		Max:   floats.Max(sorted),
	}
}

// Quantile returns the p-quantile of sorted using linear interpolation
// between the closest ranks, h = (n-1)p. sorted must be in ascending order.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// describeText counts distinct non-missing values. Ties for the most frequent
// value go to the one seen first.
func describeText(col *model.Column) Categorical {
	counts := make(map[string]int)
	var order []string
	total := 0
	for _, v := range col.Values {
		if v.Missing {
			continue
		}
		total++
		if _, seen := counts[v.Raw]; !seen {
			order = append(order, v.Raw)
		}
		counts[v.Raw]++
	}

	c := Categorical{Count: total, Unique: len(order)}
	for _, val := range order {
		if counts[val] > c.Freq {
			c.Top = val
			c.Freq = counts[val]
		}
	}
	return c
}
