package trie

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is a JSON object decoded with its key order preserved, so that a
// trie traversal over it visits sibling keys in the order they appeared in
// the source document rather than in Go's randomized map iteration order.
// Arrays ([]interface{}) already preserve order on their own; Object exists
// only because encoding/json's default map[string]interface{} decoding
// does not.
type Object struct {
	keys   []string
	values map[string]interface{}
}

func newObject() *Object {
	return &Object{values: make(map[string]interface{})}
}

func (o *Object) set(key string, value interface{}) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (o *Object) Get(key string) (interface{}, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the object's keys in the order they first appeared in the
// source document.
func (o *Object) Keys() []string {
	return o.keys
}

// MarshalJSON encodes the object as compact JSON with its keys in source
// order, so complex values stringified by the trie keep their content.
func (o *Object) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, key := range o.keys {
		k, _ := json.Marshal(key)
		v, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(append(append(buf, k...), ':'), v...)
	}
	return append(buf, '}'), nil
}

// Decode parses one JSON document from data into an order-preserving
// value: *Object for objects, []interface{} for arrays (each element
// decoded recursively), and json.Number/string/bool/nil for scalars
// (numbers via json.Number so the original digit text round-trips
// unchanged). Use this instead of json.Unmarshal into map[string]interface{}
// whenever the decoded value will be walked by Trie.Extract.
func Decode(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeValue(dec)
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (interface{}, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		// Scalars (string, json.Number, bool, nil) decode as themselves.
		return tok, nil
	}

	switch delim {
	case '{':
		obj := newObject()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected non-string object key %v", keyTok)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.set(key, val)
		}
		if _, err := dec.Token(); err != nil { // consume closing '}'
			return nil, err
		}
		return obj, nil
	case '[':
		var arr []interface{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil { // consume closing ']'
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected JSON delimiter %v", delim)
	}
}
