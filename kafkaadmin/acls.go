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

	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/cfn"
	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/models"
	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/resources"
)

// aclLogicalID names the single aggregate resource carrying every policy.
const aclLogicalID = "ACLs"

// resolveResource returns the value of a policy's Resource attribute: when
// the policy targets a topic declared in this run, a deferred read of that
// topic's generated Name attribute, decoupling the policy from any renaming
// done at deployment; otherwise the literal resource name, assumed to exist
// outside this template.
func (s *Stack) resolveResource(policy models.Policy) any {
	if policy.ResourceType == models.ResourceTypeTopic {
		if logicalID, ok := s.topics[policy.Resource]; ok {
			return cfn.GetAtt{LogicalName: logicalID, Attribute: "Name"}
		}
	}
	return policy.Resource
}

// RenderACLs declares the aggregate ACL resource with every policy resolved,
// in list order. RenderTopics must run first so topic references resolve.
func (s *Stack) RenderACLs() error {
	section := s.Model.ACLs
	if len(section.Policies) == 0 {
		return nil
	}
	variant := resources.DirectVariant
	var token any
	if section.FunctionName != "" {
		variant = resources.FunctionBackedVariant
		token = serviceToken(section.FunctionName)
	}
	policies := make([]resources.ACLPolicy, 0, len(section.Policies))
	for _, policy := range section.Policies {
		if policy.Host == "" {
			policy.Host = "*"
		}
		policies = append(policies, resources.ACLPolicy{
			Resource:     s.resolveResource(policy),
			ResourceType: string(policy.ResourceType),
			Principal:    policy.Principal,
			PatternType:  string(policy.PatternType),
			Action:       string(policy.Action),
			Effect:       string(policy.Effect),
			Host:         policy.Host,
		})
	}
	properties := &resources.KafkaACL{
		ClusterGlobals: s.clusterGlobals(),
		Policies:       policies,
		ServiceToken:   token,
	}
	if err := s.Template.AddResource(aclLogicalID, properties.Declaration(variant)); err != nil {
		return errors.Wrap(err, "declaring ACLs")
	}
	return nil
}
