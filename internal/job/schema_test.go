// seehuhn.de/go/fill - gradient and texture fills for raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package job

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/xeipuuv/gojsonschema"
)

func validateSchema(t *testing.T, f *File) *gojsonschema.Result {
	t.Helper()
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	schemaLoader := gojsonschema.NewBytesLoader(Schema)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		t.Fatalf("schema validate error: %v", err)
	}
	return result
}

func TestSchemaAccepts(t *testing.T) {
	f, err := Decode(strings.NewReader(example), "/data")
	if err != nil {
		t.Fatal(err)
	}
	result := validateSchema(t, f)
	if !result.Valid() {
		for _, e := range result.Errors() {
			t.Logf("schema error: %s", e)
		}
		t.Fatal("valid job file does not conform to the schema")
	}
}

// TestSchemaRejects checks that the schema rejects the structural errors
// which Validate reports.
func TestSchemaRejects(t *testing.T) {
	grad := &Gradient{Start: "black", Stop: "white"}
	cases := map[string]Job{
		"bad name":   {Name: "Sky", Width: 1, Height: 1, Gradient: grad},
		"zero width": {Name: "a", Height: 1, Gradient: grad},
		"too wide":   {Name: "a", Width: MaxPixels + 1, Height: 1, Gradient: grad},
		"depth 17":   {Name: "a", Width: 1, Height: 1, Depth: 17, Gradient: grad},
		"both":       {Name: "a", Width: 1, Height: 1, Gradient: grad, Texture: "x.png"},
		"neither":    {Name: "a", Width: 1, Height: 1},
	}
	for desc, j := range cases {
		f := &File{Jobs: []Job{j}}
		if err := f.Validate(); err == nil {
			t.Errorf("%s: accepted by Validate", desc)
		}
		if validateSchema(t, f).Valid() {
			t.Errorf("%s: accepted by the schema", desc)
		}
	}
}
