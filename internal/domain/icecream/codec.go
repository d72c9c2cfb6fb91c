package icecream

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// Decode parses a request body into an IceCream.
//
// The flavor is read from "sabor", falling back to "flavor". "cantidad" is optional
// and defaults to zero. An integer "quantity" overrides it; any other "quantity"
// value is ignored.
func Decode(body []byte) (IceCream, error) {
	var ic IceCream

	if !gjson.ValidBytes(body) {
		return ic, fmt.Errorf("%w: malformed json", ErrDecode)
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return ic, fmt.Errorf("%w: expected object", ErrDecode)
	}

	if id := doc.Get("id"); id.Exists() && id.Type != gjson.Null {
		v, ok := intValue(id)
		if !ok {
			return ic, fmt.Errorf("%w: id must be an integer", ErrDecode)
		}
		ic.ID = &v
	}

	flavor := doc.Get("sabor")
	if !flavor.Exists() {
		flavor = doc.Get("flavor")
	}
	if flavor.Type != gjson.String {
		return ic, fmt.Errorf("%w: sabor must be a string", ErrDecode)
	}
	if flavor.Str == "" {
		return ic, fmt.Errorf("%w: sabor is empty", ErrDecode)
	}
	ic.Flavor = flavor.Str

	if c := doc.Get("cantidad"); c.Exists() {
		v, ok := intValue(c)
		if !ok {
			return ic, fmt.Errorf("%w: cantidad must be an integer", ErrDecode)
		}
		ic.Quantity = v
	}

	if q, ok := intValue(doc.Get("quantity")); ok {
		ic.Quantity = q
	}

	return ic, nil
}

// intValue accepts integer literals in the int32 range only; 1.0 or 1e3 are rejected.
func intValue(r gjson.Result) (int, bool) {
	if r.Type != gjson.Number {
		return 0, false
	}
	v, err := strconv.ParseInt(r.Raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
