// Package batch runs many loading calculations in one request.
package batch

import (
	"errors"
	"fmt"

	"Catalyst/internal/calc/loading"
)

const MaxItems = 500

var ErrEmpty = errors.New("no items")

type BatchInput struct {
	Items []loading.Request `json:"items"`
}

// ItemResult holds either a result or the reason the item was rejected.
type ItemResult struct {
	Index   int              `json:"index"`
	Names   loading.Names    `json:"names"`
	Input   *loading.Input   `json:"input,omitempty"`
	Result  *loading.Result  `json:"result,omitempty"`
	Display *loading.Display `json:"display,omitempty"`
	Field   string           `json:"field,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type BatchResult struct {
	Results []ItemResult `json:"results"`
	Failed  int          `json:"failed"`
}

// Calculate computes every item. Invalid items are reported in place and do
// not stop the rest of the batch.
func Calculate(in BatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, ErrEmpty
	}
	if len(in.Items) > MaxItems {
		return BatchResult{}, fmt.Errorf("too many items: %d (max %d)", len(in.Items), MaxItems)
	}
	out := BatchResult{Results: make([]ItemResult, 0, len(in.Items))}
	for i, req := range in.Items {
		item := ItemResult{Index: i, Names: req.Names}
		res, input, err := calculate(req)
		if err != nil {
			item.Error = err.Error()
			var verr *loading.ValidationError
			if errors.As(err, &verr) {
				item.Field, item.Error = verr.Field, verr.Message
			}
			out.Failed++
		} else {
			rounded, display := res.Rounded(), res.Display()
			item.Input, item.Result, item.Display = &input, &rounded, &display
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func calculate(req loading.Request) (loading.Result, loading.Input, error) {
	in, err := req.Input()
	if err != nil {
		return loading.Result{}, loading.Input{}, err
	}
	res, err := loading.Calculate(in)
	return res, in, err
}
