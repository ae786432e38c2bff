package main

import (
	"math/rand"

	bitrounding "github.com/huanglangwen/bitrounding-c"
	"github.com/huanglangwen/bitrounding-c/report"
)

// syntheticSource is a report.FieldSource producing the demo Fields named
// in SPEC_FULL.md §6: a constant array, a smooth ramp, pure noise, a 3-D
// Field of two panes, and a 1-D Field with an embedded fill value. The
// round, info and demo subcommands all read from it, standing in for a
// real NetCDF/HDF5 reader.
type syntheticSource struct{}

var _ report.FieldSource = syntheticSource{}

func (syntheticSource) Variables() []string {
	return []string{"constant", "ramp", "noise", "panes", "with_fill"}
}

func (syntheticSource) Load(name string) (*bitrounding.Field, error) {
	switch name {
	case "constant":
		data := make([]float32, 256)
		for i := range data {
			data[i] = 42.0
		}
		return &bitrounding.Field{Name: name, Data: data, Shape: []int{256}}, nil

	case "ramp":
		data := make([]float32, 1024)
		for i := range data {
			data[i] = float32(i) * 0.01
		}
		return &bitrounding.Field{Name: name, Data: data, Shape: []int{1024}}, nil

	case "noise":
		rng := rand.New(rand.NewSource(1))
		data := make([]float32, 1024)
		for i := range data {
			data[i] = float32(rng.NormFloat64())
		}
		return &bitrounding.Field{Name: name, Data: data, Shape: []int{1024}}, nil

	case "panes":
		rng := rand.New(rand.NewSource(2))
		shape := []int{2, 4, 8}
		data := make([]float32, 2*4*8)
		for pane := 0; pane < 2; pane++ {
			scale := float32(1.0)
			if pane == 1 {
				scale = 1e-3
			}
			for i := 0; i < 32; i++ {
				data[pane*32+i] = scale * float32(rng.NormFloat64())
			}
		}
		return &bitrounding.Field{Name: name, Data: data, Shape: shape}, nil

	case "with_fill":
		data := make([]float32, 64)
		for i := range data {
			data[i] = float32(i)
		}
		data[10] = -999 // embedded sentinel: forces a whole-field skip
		return &bitrounding.Field{Name: name, Data: data, Shape: []int{64}, FillValue: -999, HasFillValue: true}, nil

	default:
		return nil, nil
	}
}
