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

// Package resources defines the Kafka resource record types emitted into the
// generated template. Each type exists in two variants: direct, served by a
// private CloudFormation registry resource, and function-backed, served by a
// custom resource whose provider Lambda is referenced through ServiceToken.
package resources

// Variant selects the provider implementation backing a resource
// declaration.
type Variant int

// Resource variants.
const (
	// DirectVariant declares a private registry resource type.
	DirectVariant Variant = iota
	// FunctionBackedVariant declares a Custom:: resource backed by a Lambda
	// function; its properties must carry a ServiceToken.
	FunctionBackedVariant
)

// resourceType returns the declaration type string for the variant.
func (v Variant) resourceType(direct, functionBacked string) string {
	if v == FunctionBackedVariant {
		return functionBacked
	}
	return direct
}

// ClusterGlobals are the connection attributes every generated resource
// carries. Optional SASL credentials are omitted when unset, never emitted
// empty.
type ClusterGlobals struct {
	BootstrapServers string `json:"BootstrapServers"`
	SASLUsername     string `json:"SASLUsername,omitempty"`
	SASLPassword     string `json:"SASLPassword,omitempty"`
	SASLMechanism    string `json:"SASLMechanism,omitempty"`
	SecurityProtocol string `json:"SecurityProtocol,omitempty"`
}
