// Copyright 2023 Redpanda Data, Inc.
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	  http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package cfn

import "encoding/json"

// Ref is the Ref intrinsic: a deferred reference to another resource in the
// same template, resolved to its physical ID at deployment time.
type Ref string

// MarshalJSON renders the long-form {"Ref": name} mapping.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Ref": string(r)})
}

// Sub is the Fn::Sub intrinsic: a template string with ${} placeholders
// substituted at deployment time, typically from pseudo parameters such as
// AWS::Region or AWS::AccountId.
type Sub string

// MarshalJSON renders the long-form {"Fn::Sub": template} mapping.
func (s Sub) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Fn::Sub": string(s)})
}

// GetAtt is the Fn::GetAtt intrinsic: a deferred read of an attribute of
// another resource in the same template.
type GetAtt struct {
	LogicalName string
	Attribute   string
}

// MarshalJSON renders the long-form {"Fn::GetAtt": [name, attribute]} mapping.
func (g GetAtt) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]string{"Fn::GetAtt": {g.LogicalName, g.Attribute}})
}
