// Package test contains testing utils functions.
package test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sergi/go-diff/diffmatchpatch"
	diff "github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

func init() {
	spew.Config.DisableMethods = true
	spew.Config.DisableCapacities = true
	spew.Config.DisablePointerMethods = true
	spew.Config.DisablePointerAddresses = true
}

var jsonFormatterConfig = formatter.AsciiFormatterConfig{
	Coloring:       true,
	ShowArrayIndex: true,
}

// DiffJSON returns a readable diff of two JSON documents, or "" when they
// are equivalent. Whitespace and key order are ignored.
func DiffJSON(t *testing.T, expected, actual []byte) string {
	t.Helper()

	jsonRaw := map[string]interface{}{}
	if err := json.Unmarshal(expected, &jsonRaw); err != nil {
		t.Errorf("Unable to unmarshal expected Error[%v]", err)
		return ""
	}

	diffs, diffErr := diff.New().Compare(expected, actual)
	if diffErr != nil {
		t.Errorf("Unable to calculate diff Error[%v]", diffErr)
		return ""
	}
	if diffs.Modified() {
		str, err := formatter.NewAsciiFormatter(jsonRaw, jsonFormatterConfig).Format(diffs)
		if err != nil {
			t.Errorf("Unable to format diff in test Error[%v]", err)
		}
		return str
	}
	return ""
}

// DiffModel returns a readable diff of two values, or "" when they are deeply equal.
func DiffModel(t *testing.T, expected, actual interface{}) string {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		return ""
	}
	expectedStr := spew.Sdump(expected)
	actualStr := spew.Sdump(actual)

	dump := diffmatchpatch.New()
	diffs := dump.DiffMain(expectedStr, actualStr, true)
	return dump.DiffPrettyText(diffs)
}

// MarshallingCases contains test cases for Marshalling Test functions.
type MarshallingCases []struct {
	Model interface{}

	// JSON which is compared to json.Marshal result.
	// JSON can be in any valid format. Indents and white spaces are ignored.
	JSON string
}

// Marshal run testCases on json.Marshal function.
func Marshal(t *testing.T, testCases MarshallingCases) {
	t.Helper()
	for _, tc := range testCases {
		result, err := json.Marshal(tc.Model)
		if err != nil {
			t.Errorf("Marshal failed with Error[%v]", err)
			continue
		}
		if diff := DiffJSON(t, []byte(tc.JSON), result); diff != "" {
			t.Errorf("actual != expected\n%s", diff)
		}
	}
}

// Unmarshal run test cases through decode, which must rebuild tc.Model from tc.JSON.
func Unmarshal(t *testing.T, testCases MarshallingCases, decode func([]byte) (interface{}, error)) {
	t.Helper()
	for _, tc := range testCases {
		result, err := decode([]byte(tc.JSON))
		if err != nil {
			t.Errorf("Unmarshal failed with Error[%v]", err)
			continue
		}
		if diff := DiffModel(t, tc.Model, result); diff != "" {
			t.Errorf("actual != expected\n%s", diff)
		}
	}
}
