package batch

import (
	"fmt"

	calc "Rockbolt/internal/calc"
	design "Rockbolt/internal/calc/design"
)

type Input struct {
	Items []design.Input `json:"items"`
}

type Result struct {
	Results []design.Result `json:"results"`
}

// Evaluate runs every case; the first failing item aborts the batch.
func Evaluate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, calc.Invalid("no items")
	}
	out := Result{Results: make([]design.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := design.Evaluate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
