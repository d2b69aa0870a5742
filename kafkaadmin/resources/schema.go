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

package resources

import "github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/cfn"

// Schema resource type names.
const (
	SchemaResourceType       = "EWS::Kafka::Schema"
	SchemaCustomResourceType = "Custom::KafkaTopicSchema"
)

// KafkaTopicSchema is the property set of a generated schema registration.
// Subject is either the literal topic name or a deferred reference to the
// topic resource declared in the same template.
type KafkaTopicSchema struct {
	Subject            any    `json:"Subject"`
	Type               string `json:"Type"`
	SerializeAttribute string `json:"SerializeAttribute"`
	Definition         any    `json:"Definition"`
	CompatibilityMode  string `json:"CompatibilityMode"`
	RegistryURL        string `json:"RegistryUrl"`
	RegistryUsername   string `json:"RegistryUsername,omitempty"`
	RegistryPassword   string `json:"RegistryPassword,omitempty"`
	ServiceToken       any    `json:"ServiceToken,omitempty"`
}

// Declaration wraps the properties into a template resource declaration of
// the selected variant.
func (s *KafkaTopicSchema) Declaration(variant Variant) *cfn.Resource {
	return &cfn.Resource{
		Type:       variant.resourceType(SchemaResourceType, SchemaCustomResourceType),
		Properties: s,
	}
}
