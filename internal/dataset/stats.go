package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/WangHong-yang/torch-datasets/internal/tensor"
)

// FieldStats holds per-field summary statistics over all elements of a
// field, taken across the whole sample axis.
type FieldStats struct {
	Mean   float64
	StdDev float64
}

// Stats computes the mean and standard deviation of a float field.
// Non-float fields and unknown field names are rejected.
func (d *TableDataset) Stats(field string) (FieldStats, error) {
	values, err := d.fieldValues(field)
	if err != nil {
		return FieldStats{}, err
	}

	mean, std := stat.MeanStdDev(values, nil)
	return FieldStats{Mean: mean, StdDev: std}, nil
}

// Normalize rescales a float field in place to zero mean and unit
// variance, returning the statistics that were removed. Constant fields
// are only centered. This mutates the backing table and therefore every
// dataset sharing it.
func (d *TableDataset) Normalize(field string) (FieldStats, error) {
	stats, err := d.Stats(field)
	if err != nil {
		return FieldStats{}, err
	}

	scale := stats.StdDev
	if scale == 0 {
		scale = 1
	}

	switch t := d.table[field]; t.DType() {
	case tensor.Float32:
		data := t.AsFloat32()
		for i, v := range data {
			data[i] = float32((float64(v) - stats.Mean) / scale)
		}
	case tensor.Float64:
		data := t.AsFloat64()
		for i, v := range data {
			data[i] = (v - stats.Mean) / scale
		}
	}
	return stats, nil
}

// fieldValues flattens a float field into a []float64 for gonum.
func (d *TableDataset) fieldValues(field string) ([]float64, error) {
	t, ok := d.table[field]
	if !ok {
		return nil, fmt.Errorf("stats: no field %q in table", field)
	}

	switch t.DType() {
	case tensor.Float32:
		src := t.AsFloat32()
		values := make([]float64, len(src))
		for i, v := range src {
			values[i] = float64(v)
		}
		return values, nil
	case tensor.Float64:
		return append([]float64(nil), t.AsFloat64()...), nil
	default:
		return nil, fmt.Errorf("stats: field %q has dtype %s, want float32 or float64", field, t.DType())
	}
}
