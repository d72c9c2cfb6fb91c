package icecream

import (
	"encoding/json"
	"fmt"
)

// IceCream is a flavor record. Field order follows the icecreams table columns.
type IceCream struct {
	ID       *int   `json:"id"`
	Flavor   string `json:"sabor"`
	Quantity int    `json:"cantidad"`
}

// Encode returns the JSON representation of a record.
func Encode(ic IceCream) ([]byte, error) {
	b, err := json.Marshal(ic)
	if err != nil {
		return nil, fmt.Errorf("encode icecream: %w", err)
	}
	return b, nil
}

// EncodeList returns a JSON array keeping the order of items. A nil slice encodes as [].
func EncodeList(items []IceCream) ([]byte, error) {
	if items == nil {
		items = []IceCream{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode icecreams: %w", err)
	}
	return b, nil
}
