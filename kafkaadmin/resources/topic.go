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

// Topic resource type names.
const (
	TopicResourceType       = "EWS::Kafka::Topic"
	TopicCustomResourceType = "Custom::KafkaTopic"
)

// KafkaTopic is the property set of a generated topic resource.
type KafkaTopic struct {
	ClusterGlobals

	Name              string         `json:"Name"`
	ReplicationFactor int            `json:"ReplicationFactor"`
	Settings          map[string]any `json:"Settings,omitempty"`
	ServiceToken      any            `json:"ServiceToken,omitempty"`
}

// Declaration wraps the properties into a template resource declaration of
// the selected variant, with the section's deletion policy attached.
func (t *KafkaTopic) Declaration(variant Variant, deletionPolicy string) *cfn.Resource {
	return &cfn.Resource{
		Type:           variant.resourceType(TopicResourceType, TopicCustomResourceType),
		DeletionPolicy: deletionPolicy,
		Properties:     t,
	}
}
