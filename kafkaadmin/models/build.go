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

package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// defaultReplicationFactor applies when neither the topic nor its section
// sets one.
const defaultReplicationFactor = 3

// ErrNothingDefined is returned when a merged document declares neither
// topics nor ACL policies; such a run would generate an empty template.
var ErrNothingDefined = errors.New("you must define at least one of ACLs or Topics")

// ValidationError reports every field of a canonical document that failed
// type coercion or enum validation, not just the first one encountered.
type ValidationError struct {
	Issues []error
}

func (e *ValidationError) Error() string {
	agg := &multierror.Error{Errors: e.Issues}
	return agg.Error()
}

// Build validates and coerces a merged canonical document into a Model.
// Type mismatches and unrecognized enum values are collected across the whole
// document and returned together as a *ValidationError. A document declaring
// neither topics nor policies fails with ErrNothingDefined.
func Build(doc map[string]any) (*Model, error) {
	var model Model
	var issues []error

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &model})
	if err != nil {
		return nil, errors.Wrap(err, "building document decoder")
	}
	if err := decoder.Decode(doc); err != nil {
		var decodeErr *mapstructure.Error
		if !errors.As(err, &decodeErr) {
			return nil, errors.Wrap(err, "decoding canonical document")
		}
		for _, msg := range decodeErr.Errors {
			issues = append(issues, errors.New(msg))
		}
	}

	issues = append(issues, model.normalize()...)
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	if len(model.Topics.Topics) == 0 && len(model.ACLs.Policies) == 0 {
		return nil, ErrNothingDefined
	}
	return &model, nil
}

// normalize applies documented defaults and validates enum fields, returning
// one error per offending field.
func (m *Model) normalize() []error {
	var issues []error
	report := func(path, format string, args ...any) {
		issues = append(issues, fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...)))
	}

	if m.Globals.BootstrapServers == "" {
		report("Globals.BootstrapServers", "value is required")
	}
	checkEnum(&m.Globals.SASLMechanism, SASLMechanismPlain, saslMechanisms, "Globals.SASLMechanism", report)
	checkEnum(&m.Globals.SecurityProtocol, SecurityProtocolPlaintext, securityProtocols, "Globals.SecurityProtocol", report)

	checkEnum(&m.Topics.DeletionPolicy, DeletionPolicyRetain, deletionPolicies, "Topics.DeletionPolicy", report)
	if m.Topics.ReplicationFactor == 0 {
		m.Topics.ReplicationFactor = defaultReplicationFactor
	} else if m.Topics.ReplicationFactor < 0 {
		report("Topics.ReplicationFactor", "must be a positive integer, got %d", m.Topics.ReplicationFactor)
	}
	for i := range m.Topics.Topics {
		topic := &m.Topics.Topics[i]
		path := fmt.Sprintf("Topics.Topics[%d]", i)
		if topic.Name == "" {
			report(path+".Name", "value is required")
		}
		if topic.ReplicationFactor < 0 {
			report(path+".ReplicationFactor", "must be a positive integer, got %d", topic.ReplicationFactor)
		}
		if topic.Schema != nil {
			issues = append(issues, topic.Schema.normalize(path+".Schema")...)
		}
	}

	for i := range m.ACLs.Policies {
		policy := &m.ACLs.Policies[i]
		path := fmt.Sprintf("ACLs.Policies[%d]", i)
		if policy.Resource == "" {
			report(path+".Resource", "value is required")
		}
		if policy.Principal == "" {
			report(path+".Principal", "value is required")
		}
		if policy.ResourceType == "" {
			report(path+".ResourceType", "value is required")
		} else {
			checkEnum(&policy.ResourceType, "", resourceTypes, path+".ResourceType", report)
		}
		if policy.Action == "" {
			report(path+".Action", "value is required")
		} else {
			checkEnum(&policy.Action, "", actions, path+".Action", report)
		}
		checkEnum(&policy.PatternType, PatternTypeLiteral, patternTypes, path+".PatternType", report)
		checkEnum(&policy.Effect, EffectAllow, effects, path+".Effect", report)
		if policy.Host == "" {
			policy.Host = "*"
		}
	}

	return issues
}

// normalize validates a schema registration's enum fields. Registry settings
// are not resolved here; their precedence against the Schemas section is a
// projection concern.
func (s *Schema) normalize(path string) []error {
	var issues []error
	report := func(field, format string, args ...any) {
		issues = append(issues, fmt.Errorf("%s.%s: %s", path, field, fmt.Sprintf(format, args...)))
	}

	if s.Type == "" {
		report("Type", "value is required")
	} else if _, ok := schemaTypes[s.Type]; !ok {
		report("Type", "unsupported value %q", s.Type)
	}
	if s.SerializeAttribute == "" {
		report("SerializeAttribute", "value is required")
	} else if _, ok := serializeAttributes[s.SerializeAttribute]; !ok {
		report("SerializeAttribute", "unsupported value %q", s.SerializeAttribute)
	}
	if s.Definition == nil {
		report("Definition", "value is required")
	}
	if s.CompatibilityMode == "" {
		s.CompatibilityMode = CompatibilityBackward
	} else if _, ok := compatibilityModes[s.CompatibilityMode]; !ok {
		report("CompatibilityMode", "unsupported value %q", s.CompatibilityMode)
	}
	return issues
}

// checkEnum defaults an empty enum field and reports an unrecognized value.
// An empty fallback means the field has no default and emptiness was already
// reported by the caller.
func checkEnum[T ~string](field *T, fallback T, allowed map[T]struct{}, path string, report func(string, string, ...any)) {
	if *field == "" {
		*field = fallback
		return
	}
	if _, ok := allowed[*field]; !ok {
		report(path, "unsupported value %q", string(*field))
	}
}
