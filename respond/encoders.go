// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package respond

import (
	"encoding/json"
	"encoding/xml"
	"io"
)

// JSON returns the built-in application/json encoder.
func JSON() Encoder {
	return jsonEncoder{}
}

type jsonEncoder struct{}

func (jsonEncoder) MediaType() string {
	return "application/json"
}

func (jsonEncoder) ContentType() string {
	return "application/json; charset=utf-8"
}

func (jsonEncoder) Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// XML returns the built-in application/xml encoder. Payloads follow the
// encoding/xml marshaling rules, so maps need a custom marshaler.
func XML() Encoder {
	return xmlEncoder{}
}

type xmlEncoder struct{}

func (xmlEncoder) MediaType() string {
	return "application/xml"
}

func (xmlEncoder) ContentType() string {
	return "application/xml; charset=utf-8"
}

func (xmlEncoder) Encode(w io.Writer, v any) error {
	return xml.NewEncoder(w).Encode(v)
}
