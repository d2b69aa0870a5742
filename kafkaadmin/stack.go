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

// Package kafkaadmin renders Kafka topics, ACL policies and schema
// registrations described by layered YAML documents into a single
// CloudFormation template. Documents are merged in input order, validated
// into a typed model, and projected into resource declarations; ACL policies
// naming a topic declared in the same run reference the topic's generated
// name instead of the literal string.
package kafkaadmin

import (
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/cfn"
	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/merge"
	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/models"
	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/resources"
)

const templateDescription = "Kafka topics-acls-schemas root"

// Stack assembles one CloudFormation template from a validated model.
type Stack struct {
	Model    *models.Model
	Template *cfn.Template

	logger *zap.Logger
	// topics maps each declared topic's raw name to its logical ID, for ACL
	// and schema resolution. Populated by RenderTopics.
	topics  map[string]string
	schemas map[string]string
}

// Option configures a Stack.
type Option func(*Stack)

// WithLogger sets the logger used for non-fatal diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Stack) {
		s.logger = logger
	}
}

// NewStack loads and merges the configuration documents at paths (in order,
// entity lists extended) and the optional override document (merged last,
// entity lists left untouched), then validates the result into a model.
// Non-YAML paths are skipped.
func NewStack(paths []string, overridePath string, opts ...Option) (*Stack, error) {
	doc := map[string]any{
		"Globals": map[string]any{},
		"Topics":  map[string]any{},
		"ACLs":    map[string]any{},
	}
	for _, path := range paths {
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			continue
		}
		parsed, err := loadDocument(path)
		if err != nil {
			return nil, err
		}
		doc, err = merge.Merge(doc, parsed, true)
		if err != nil {
			return nil, errors.Wrapf(err, "merging %s", path)
		}
	}
	if overridePath != "" {
		parsed, err := loadDocument(overridePath)
		if err != nil {
			return nil, err
		}
		doc, err = merge.Merge(doc, parsed, false)
		if err != nil {
			return nil, errors.Wrapf(err, "merging override %s", overridePath)
		}
	}
	model, err := models.Build(doc)
	if err != nil {
		return nil, err
	}
	return NewStackFromModel(model, opts...), nil
}

// NewStackFromModel wraps an already validated model in a Stack.
func NewStackFromModel(model *models.Model, opts ...Option) *Stack {
	s := &Stack{
		Model:    model,
		Template: cfn.NewTemplate(templateDescription),
		logger:   zap.NewNop(),
		topics:   make(map[string]string),
		schemas:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TopicResources returns the logical IDs of the declared topic resources,
// keyed by raw topic name.
func (s *Stack) TopicResources() map[string]string {
	out := make(map[string]string, len(s.topics))
	for name, id := range s.topics {
		out[name] = id
	}
	return out
}

// SchemaResources returns the logical IDs of the declared schema resources,
// keyed by topic name.
func (s *Stack) SchemaResources() map[string]string {
	out := make(map[string]string, len(s.schemas))
	for name, id := range s.schemas {
		out[name] = id
	}
	return out
}

// Render projects the model into the template. Topics render before ACLs so
// that policy resources can resolve against the declared topics.
func (s *Stack) Render() (*cfn.Template, error) {
	if err := s.RenderTopics(); err != nil {
		return nil, err
	}
	if err := s.RenderACLs(); err != nil {
		return nil, err
	}
	return s.Template, nil
}

func loadDocument(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	parsed, err := cfn.DecodeYAML(content)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return parsed, nil
}

// clusterGlobals projects the model's Globals into resource attributes.
func (s *Stack) clusterGlobals() resources.ClusterGlobals {
	g := s.Model.Globals
	return resources.ClusterGlobals{
		BootstrapServers: g.BootstrapServers,
		SASLUsername:     g.SASLUsername,
		SASLPassword:     g.SASLPassword,
		SASLMechanism:    string(g.SASLMechanism),
		SecurityProtocol: string(g.SecurityProtocol),
	}
}

// serviceToken returns the ServiceToken for a function-backed section: the
// function name as given when it is already a fully qualified ARN, otherwise
// an Fn::Sub synthesizing the ARN from the deployment's partition, region and
// account.
func serviceToken(functionName string) any {
	if strings.HasPrefix(functionName, "arn:aws") {
		return functionName
	}
	return cfn.Sub(
		"arn:${AWS::Partition}:lambda:${AWS::Region}:${AWS::AccountId}:function:" + functionName,
	)
}

// LogicalID derives the deterministic template identifier for a logical
// entity name: the name is title-cased on non-alphanumeric boundaries and
// stripped of everything else, so "my-topic_1" becomes "MyTopic1". Only the
// name itself feeds the identifier, keeping re-generation idempotent.
func LogicalID(name string) string {
	var b strings.Builder
	wordStart := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if wordStart {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			wordStart = false
		case unicode.IsDigit(r):
			b.WriteRune(r)
			wordStart = true
		default:
			wordStart = true
		}
	}
	return b.String()
}
