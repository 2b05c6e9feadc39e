package models

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Amount is a tagged variant for billing figures: either a numeric value or
// unset, decided once when the request is decoded. Clients historically sent
// billing amounts as either numbers or numeric strings; both are accepted at
// the boundary and normalized to a number. Anything else is rejected.
type Amount struct {
	value float64
	set   bool
}

func NewAmount(value float64) Amount {
	return Amount{value: value, set: true}
}

func (a Amount) IsSet() bool {
	return a.set
}

func (a Amount) Value() float64 {
	return a.value
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*a = Amount{}
		return nil
	case float64:
		*a = Amount{value: v, set: true}
		return nil
	case string:
		if v == "" {
			*a = Amount{}
			return nil
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("amount %q is not numeric", v)
		}
		*a = Amount{value: parsed, set: true}
		return nil
	default:
		return fmt.Errorf("amount must be a number or numeric string, got %T", raw)
	}
}

func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !a.set {
		return bson.TypeNull, nil, nil
	}
	return bson.MarshalValue(a.value)
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*a = Amount{}
		return nil
	case bson.TypeDouble:
		*a = Amount{value: raw.Double(), set: true}
		return nil
	case bson.TypeInt32:
		*a = Amount{value: float64(raw.Int32()), set: true}
		return nil
	case bson.TypeInt64:
		*a = Amount{value: float64(raw.Int64()), set: true}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into Amount", t)
	}
}
