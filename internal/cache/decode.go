package cache

import "encoding/json"

// Decode materializes a cached value into dest, which must be a pointer.
// The memory backend hands back the exact value that was stored, while the
// persistent backends hand back generic JSON shapes (map[string]interface{},
// []interface{}, float64). A JSON round trip converts either form into the
// caller's typed structure.
func Decode(value interface{}, dest interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
