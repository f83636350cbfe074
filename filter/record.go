package filter

import (
	"encoding/json"
	"fmt"
)

// ToRecord flattens a typed search item into a Record keyed by JSON names
func ToRecord(item any) (Record, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	rec := Record{}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("record is not a JSON object: %w", err)
	}
	return rec, nil
}

// ID returns the record id, or an empty string when absent
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}
