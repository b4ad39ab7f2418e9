package types

import "encoding/json"

// Encode serialises a state or payload value. Encoding our own types can
// only fail on a programming error, so it panics rather than returning one.
func Encode(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

// Decode deserialises data produced by Encode.
func Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
