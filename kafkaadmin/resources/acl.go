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

// ACL resource type names.
const (
	ACLResourceType       = "EWS::Kafka::ACL"
	ACLCustomResourceType = "Custom::KafkaACL"
)

// ACLPolicy is one resolved policy entry of the aggregate ACL resource.
// Resource is either a literal name or a deferred reference to a topic
// declared in the same template.
type ACLPolicy struct {
	Resource     any    `json:"Resource"`
	ResourceType string `json:"ResourceType"`
	Principal    string `json:"Principal"`
	PatternType  string `json:"PatternType"`
	Action       string `json:"Action"`
	Effect       string `json:"Effect"`
	Host         string `json:"Host"`
}

// KafkaACL is the property set of the single aggregate ACL resource; all
// policies of a run share one resource instance.
type KafkaACL struct {
	ClusterGlobals

	Policies     []ACLPolicy `json:"Policies"`
	ServiceToken any         `json:"ServiceToken,omitempty"`
}

// Declaration wraps the properties into a template resource declaration of
// the selected variant.
func (a *KafkaACL) Declaration(variant Variant) *cfn.Resource {
	return &cfn.Resource{
		Type:       variant.resourceType(ACLResourceType, ACLCustomResourceType),
		Properties: a,
	}
}
