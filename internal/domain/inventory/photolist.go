package inventory

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PhotoList is an ordered list of image data URLs. Index 0 is the primary
// thumbnail. It is stored as a JSON array in a single TEXT column.
type PhotoList []string

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		p = PhotoList{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *PhotoList) Scan(src any) error {
	if src == nil {
		*p = PhotoList{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported photo list column type %T", src)
	}
	if len(raw) == 0 {
		*p = PhotoList{}
		return nil
	}
	return json.Unmarshal(raw, p)
}
