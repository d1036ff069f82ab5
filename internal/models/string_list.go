package models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList is an ordered list of strings stored as a JSON array in a text
// column. Decoding never fails: legacy rows holding a JSON string that itself
// encodes an array are unwrapped, anything else becomes an empty list.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		*l = DecodeStringList(v)
	case string:
		*l = DecodeStringList([]byte(v))
	default:
		*l = StringList{}
	}
	return nil
}

// UnmarshalJSON accepts either an array of strings or a string holding one.
func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = DecodeStringList(data)
	return nil
}

// MarshalJSON always emits an array, never null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// DecodeStringList decodes raw column or request data into a list.
func DecodeStringList(raw []byte) StringList {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			return StringList{}
		}
		return list
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &list); err == nil && list != nil {
			return list
		}
	}

	return StringList{}
}
