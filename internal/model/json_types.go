package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a list of strings as a JSON column. MySQL has no
// native array type.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

// Narrative is the free-form brand story stored on a brand.
type Narrative struct {
	Origin string `json:"origin"`
	Values string `json:"values"`
	Vision string `json:"vision"`
}

// Value implements driver.Valuer.
func (n Narrative) Value() (driver.Value, error) {
	return json.Marshal(n)
}

// Scan implements sql.Scanner.
func (n *Narrative) Scan(src interface{}) error {
	if src == nil {
		*n = Narrative{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, n)
	case string:
		return json.Unmarshal([]byte(v), n)
	default:
		return fmt.Errorf("unsupported type %T for Narrative", src)
	}
}
