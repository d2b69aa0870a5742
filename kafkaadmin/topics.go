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

package kafkaadmin

import (
	"github.com/pkg/errors"

	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/resources"
)

// RenderTopics declares one topic resource per model topic, in list order,
// and registers each under its raw name for ACL resolution. A topic's
// embedded Schema is not materialized here; schema registrations only happen
// through AddTopicSchema.
func (s *Stack) RenderTopics() error {
	section := s.Model.Topics
	if len(section.Topics) == 0 {
		s.logger.Info("No Topics defined")
		return nil
	}
	variant := resources.DirectVariant
	var token any
	if section.FunctionName != "" {
		variant = resources.FunctionBackedVariant
		token = serviceToken(section.FunctionName)
	}
	for _, topic := range section.Topics {
		replicationFactor := topic.ReplicationFactor
		if replicationFactor == 0 {
			replicationFactor = section.ReplicationFactor
		}
		properties := &resources.KafkaTopic{
			ClusterGlobals:    s.clusterGlobals(),
			Name:              topic.Name,
			ReplicationFactor: replicationFactor,
			Settings:          topic.Settings,
			ServiceToken:      token,
		}
		logicalID := LogicalID(topic.Name)
		declaration := properties.Declaration(variant, string(section.DeletionPolicy))
		if err := s.Template.AddResource(logicalID, declaration); err != nil {
			return errors.Wrapf(err, "declaring topic %q", topic.Name)
		}
		s.topics[topic.Name] = logicalID
	}
	return nil
}
