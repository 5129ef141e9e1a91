package resources

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ListResult is the uniform shape of a list operation.
type ListResult struct {
	Items []json.RawMessage
	Total int
}

// Result is the uniform shape of a single-item operation.
type Result struct {
	Item json.RawMessage
}

// NormalizeList tolerates the two server response shapes: a bare array, or an
// object carrying data and optionally total.
func NormalizeList(body []byte) (ListResult, error) {
	items := []json.RawMessage{}
	if err := json.Unmarshal(body, &items); err == nil {
		return ListResult{Items: items, Total: len(items)}, nil
	}

	envelope := struct {
		Data  json.RawMessage `json:"data"`
		Total *int            `json:"total"`
	}{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ListResult{}, errors.Wrap(err, "[NormalizeList] Unmarshal")
	}

	items = []json.RawMessage{}
	if len(envelope.Data) > 0 {
		// data may not be a sequence; treat anything else as an empty list
		if err := json.Unmarshal(envelope.Data, &items); err != nil {
			items = []json.RawMessage{}
		}
	}

	total := len(items)
	if envelope.Total != nil {
		total = *envelope.Total
	}

	return ListResult{Items: items, Total: total}, nil
}

// Decode unmarshals a single-item result into T.
func Decode[T any](res Result) (T, error) {
	var item T
	if err := json.Unmarshal(res.Item, &item); err != nil {
		return item, errors.Wrap(err, "[Decode] Unmarshal")
	}
	return item, nil
}

// DecodeItems unmarshals every item of a list result into T.
func DecodeItems[T any](list ListResult) ([]T, error) {
	items := make([]T, 0, len(list.Items))
	for i, raw := range list.Items {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, errors.Wrapf(err, "[DecodeItems] item %d", i)
		}
		items = append(items, item)
	}
	return items, nil
}
