// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"encoding/json"
	"fmt"
)

var (
	_ json.Marshaler   = Decoded{}
	_ json.Unmarshaler = &Decoded{}
)

type jsonDecoded struct {
	Precision        string  `json:"precision"`
	Binary           string  `json:"binary"`
	Sign             int     `json:"sign"`
	Exponent         uint64  `json:"exponent"`
	Mantissa         uint64  `json:"mantissa"`
	ActualExponent   int     `json:"actualExponent"`
	MantissaFraction float64 `json:"mantissaFraction"`
	Class            string  `json:"class"`
	// Value is a string, as json has no infinities and NaNs.
	Value string `json:"value"`
	Exact string `json:"exact,omitempty"`
}

// MarshalJSON marshals the fields and the derived values of d into an object.
func (d Decoded) MarshalJSON() ([]byte, error) {
	jd := jsonDecoded{
		Precision:        d.prec.String(),
		Binary:           d.Binary(),
		Sign:             d.Sign(),
		Exponent:         d.Exponent(),
		Mantissa:         d.Mantissa(),
		ActualExponent:   d.ActualExponent(),
		MantissaFraction: d.MantissaFraction(),
		Class:            d.Class().String(),
		Value:            formatFloat(d.Value(), d.valueBits()),
	}
	if exact, ok := d.ExactValue(); ok {
		jd.Exact = exact.String()
	}
	return json.Marshal(jd)
}

// UnmarshalJSON accepts either a number, which is decoded as a double,
// or an object with "precision" and "binary" fields, as produced by MarshalJSON.
func (d *Decoded) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case '{':
		var jd jsonDecoded
		if err := json.Unmarshal(data, &jd); err != nil {
			return err
		}
		p, err := PrecisionByName(jd.Precision)
		if err != nil {
			return err
		}
		value, err := ParseBinary(jd.Binary, p)
		if err != nil {
			return err
		}
		*d = value
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*d = FromFloat64(f)
	}
	return nil
}
