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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDoc() map[string]any {
	return map[string]any{
		"Globals": map[string]any{
			"BootstrapServers": "broker-1:9092",
		},
		"Topics": map[string]any{
			"Topics": []any{
				map[string]any{"Name": "orders"},
			},
		},
		"ACLs": map[string]any{
			"Policies": []any{
				map[string]any{
					"ResourceType": "TOPIC",
					"Resource":     "orders",
					"Principal":    "User:app",
					"Action":       "READ",
					"Effect":       "ALLOW",
				},
			},
		},
	}
}

func TestBuildValidDocument(t *testing.T) {
	model, err := Build(validDoc())
	require.NoError(t, err)

	assert.Equal(t, "broker-1:9092", model.Globals.BootstrapServers)
	assert.Equal(t, SASLMechanismPlain, model.Globals.SASLMechanism)
	assert.Equal(t, SecurityProtocolPlaintext, model.Globals.SecurityProtocol)
	assert.Equal(t, DeletionPolicyRetain, model.Topics.DeletionPolicy)
	assert.Equal(t, defaultReplicationFactor, model.Topics.ReplicationFactor)
	assert.Nil(t, model.Schemas)

	require.Len(t, model.ACLs.Policies, 1)
	policy := model.ACLs.Policies[0]
	assert.Equal(t, PatternTypeLiteral, policy.PatternType)
	assert.Equal(t, EffectAllow, policy.Effect)
	assert.Equal(t, "*", policy.Host)
}

func TestBuildNothingDefined(t *testing.T) {
	doc := map[string]any{
		"Globals": map[string]any{"BootstrapServers": "broker-1:9092"},
		"Topics":  map[string]any{"Topics": []any{}},
		"ACLs":    map[string]any{"Policies": []any{}},
	}
	_, err := Build(doc)
	assert.ErrorIs(t, err, ErrNothingDefined)
}

func TestBuildReportsEveryOffendingField(t *testing.T) {
	doc := validDoc()
	doc["Globals"].(map[string]any)["SASLMechanism"] = "KERBEROS"
	doc["Topics"].(map[string]any)["DeletionPolicy"] = "Obliterate"
	doc["ACLs"].(map[string]any)["Policies"].([]any)[0].(map[string]any)["Action"] = "PUBLISH"

	_, err := Build(doc)
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Issues, 3)
	assert.Contains(t, err.Error(), "Globals.SASLMechanism")
	assert.Contains(t, err.Error(), "Topics.DeletionPolicy")
	assert.Contains(t, err.Error(), "ACLs.Policies[0].Action")
}

func TestBuildTypeMismatch(t *testing.T) {
	doc := validDoc()
	doc["Topics"].(map[string]any)["ReplicationFactor"] = "three"

	_, err := Build(doc)
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "ReplicationFactor")
}

func TestBuildRequiredFields(t *testing.T) {
	doc := validDoc()
	doc["Globals"] = map[string]any{}
	doc["Topics"].(map[string]any)["Topics"].([]any)[0].(map[string]any)["Name"] = ""
	policy := doc["ACLs"].(map[string]any)["Policies"].([]any)[0].(map[string]any)
	delete(policy, "Principal")
	delete(policy, "Action")

	_, err := Build(doc)
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "Globals.BootstrapServers")
	assert.Contains(t, err.Error(), "Topics.Topics[0].Name")
	assert.Contains(t, err.Error(), "ACLs.Policies[0].Principal")
	assert.Contains(t, err.Error(), "ACLs.Policies[0].Action")
}

func TestBuildTopicSchema(t *testing.T) {
	doc := validDoc()
	doc["Topics"].(map[string]any)["Topics"] = []any{
		map[string]any{
			"Name": "orders",
			"Schema": map[string]any{
				"Type":               "AVRO",
				"SerializeAttribute": "VALUE",
				"Definition":         map[string]any{"type": "record"},
			},
		},
	}
	model, err := Build(doc)
	require.NoError(t, err)

	schema := model.Topics.Topics[0].Schema
	require.NotNil(t, schema)
	assert.Equal(t, SchemaTypeAvro, schema.Type)
	assert.Equal(t, CompatibilityBackward, schema.CompatibilityMode)
}

func TestBuildTopicSchemaInvalidEnums(t *testing.T) {
	doc := validDoc()
	doc["Topics"].(map[string]any)["Topics"] = []any{
		map[string]any{
			"Name": "orders",
			"Schema": map[string]any{
				"Type":               "THRIFT",
				"SerializeAttribute": "HEADER",
				"Definition":         "{}",
			},
		},
	}
	_, err := Build(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Topics.Topics[0].Schema.Type")
	assert.Contains(t, err.Error(), "Topics.Topics[0].Schema.SerializeAttribute")
}

func TestBuildUnknownKeysIgnored(t *testing.T) {
	doc := validDoc()
	doc["Topics"].(map[string]any)["PartitionScheme"] = "unused"

	_, err := Build(doc)
	assert.NoError(t, err)
}

func TestBuildSchemasSection(t *testing.T) {
	doc := validDoc()
	doc["Schemas"] = map[string]any{
		"RegistryUrl":  "https://registry.internal",
		"FunctionName": "register-schemas",
	}
	model, err := Build(doc)
	require.NoError(t, err)
	require.NotNil(t, model.Schemas)
	assert.Equal(t, "https://registry.internal", model.Schemas.RegistryURL)
	assert.Equal(t, "register-schemas", model.Schemas.FunctionName)
}
