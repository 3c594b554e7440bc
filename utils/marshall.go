// Package utils contains JSON helpers shared by type-tagged models.
package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// TypeBasedUnmarshallJSON decodes data into the model registered in
// typeMapping under the value of its "type" field and returns it by value.
func TypeBasedUnmarshallJSON(
	data []byte, typeMapping map[string]func() interface{},
) (interface{}, error) {
	var tagged struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, err
	}

	create, knownType := typeMapping[tagged.Type]
	if !knownType {
		return nil, fmt.Errorf("unknown type %q", tagged.Type)
	}
	model := create()
	if err := json.Unmarshal(data, model); err != nil {
		return nil, err
	}
	reflectValue := reflect.ValueOf(model)
	if reflectValue.Kind() != reflect.Ptr {
		return nil, fmt.Errorf("type mapping for %q must return a pointer, got %T", tagged.Type, model)
	}
	return reflectValue.Elem().Interface(), nil
}
