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
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
	"go.uber.org/zap"

	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/cfn"
	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/models"
	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin/resources"
)

// ErrNoRegistryURL is returned when neither the schema nor the Schemas
// section defines a registry URL.
var ErrNoRegistryURL = errors.New("RegistryUrl is not defined in the Schema settings nor in Schemas")

// AddTopicSchema declares a schema registration resource for topicName.
// Registry settings resolve per-schema first, then from the Schemas section;
// a missing registry URL is an error, missing credentials are omitted. When
// the definition is a string it is tried as a path to a JSON (or JSONC)
// schema file and compacted; a string that names no file is used verbatim as
// the definition, with a warning.
func (s *Stack) AddTopicSchema(topicName string, schema models.Schema) error {
	registryURL := schema.RegistryURL
	registryUsername := schema.RegistryUsername
	registryPassword := schema.RegistryPassword
	variant := resources.DirectVariant
	var token any
	if s.Model.Schemas != nil {
		if registryURL == "" {
			registryURL = s.Model.Schemas.RegistryURL
		}
		if registryUsername == "" {
			registryUsername = s.Model.Schemas.RegistryUsername
		}
		if registryPassword == "" {
			registryPassword = s.Model.Schemas.RegistryPassword
		}
		if s.Model.Schemas.FunctionName != "" {
			variant = resources.FunctionBackedVariant
			token = serviceToken(s.Model.Schemas.FunctionName)
		}
	}
	if registryURL == "" {
		return errors.Wrapf(ErrNoRegistryURL, "schema for topic %q", topicName)
	}

	definition := schema.Definition
	if raw, ok := schema.Definition.(string); ok {
		loaded, err := s.loadSchemaDefinition(raw)
		if err != nil {
			return errors.Wrapf(err, "schema for topic %q", topicName)
		}
		definition = loaded
	}

	// Subject follows the deployed topic name when the topic is declared in
	// this run.
	var subject any = topicName
	if logicalID, ok := s.topics[topicName]; ok {
		subject = cfn.Ref(logicalID)
	}

	properties := &resources.KafkaTopicSchema{
		Subject:            subject,
		Type:               string(schema.Type),
		SerializeAttribute: string(schema.SerializeAttribute),
		Definition:         definition,
		CompatibilityMode:  string(schema.CompatibilityMode),
		RegistryURL:        registryURL,
		RegistryUsername:   registryUsername,
		RegistryPassword:   registryPassword,
		ServiceToken:       token,
	}
	logicalID := LogicalID(topicName) + string(schema.Type) + string(schema.SerializeAttribute) + "Schema"
	if err := s.Template.AddResource(logicalID, properties.Declaration(variant)); err != nil {
		return errors.Wrapf(err, "declaring schema for topic %q", topicName)
	}
	s.schemas[topicName] = logicalID
	return nil
}

// loadSchemaDefinition reads the schema definition file at raw and returns
// its contents as compact JSON, accepting JSONC input. A string naming no
// readable file is reinterpreted as the literal definition; a file that does
// exist must hold valid JSON.
func (s *Stack) loadSchemaDefinition(raw string) (string, error) {
	content, err := os.ReadFile(raw)
	if err != nil {
		s.logger.Warn("failed to load schema definition file, using string literal as definition",
			zap.Error(err))
		return raw, nil
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, jsonc.ToJSON(content)); err != nil {
		return "", errors.Wrapf(err, "parsing schema definition file %s", raw)
	}
	return compact.String(), nil
}
