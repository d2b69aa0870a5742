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

// Enumerated model fields are string types whose value is exactly the
// external resource attribute string, so a validated variant never needs a
// second lookup before emission.

// SecurityProtocol is the Kafka client security protocol.
type SecurityProtocol string

// Supported security protocols.
const (
	SecurityProtocolPlaintext     SecurityProtocol = "PLAINTEXT"
	SecurityProtocolSSL           SecurityProtocol = "SSL"
	SecurityProtocolSASLPlaintext SecurityProtocol = "SASL_PLAINTEXT"
	SecurityProtocolSASLSSL       SecurityProtocol = "SASL_SSL"
)

// SASLMechanism is the SASL authentication mechanism.
type SASLMechanism string

// Supported SASL mechanisms.
const (
	SASLMechanismPlain       SASLMechanism = "PLAIN"
	SASLMechanismGSSAPI      SASLMechanism = "GSSAPI"
	SASLMechanismOauthBearer SASLMechanism = "OAUTHBEARER"
	SASLMechanismScramSHA256 SASLMechanism = "SCRAM-SHA-256"
	SASLMechanismScramSHA512 SASLMechanism = "SCRAM-SHA-512"
)

// DeletionPolicy controls what happens to deployed topics when their
// declaration is removed from the template.
type DeletionPolicy string

// Supported deletion policies.
const (
	DeletionPolicyRetain DeletionPolicy = "Retain"
	DeletionPolicyDelete DeletionPolicy = "Delete"
)

// ResourceType is the kind of Kafka entity an ACL policy applies to.
type ResourceType string

// Supported ACL resource types.
const (
	ResourceTypeTopic           ResourceType = "TOPIC"
	ResourceTypeGroup           ResourceType = "GROUP"
	ResourceTypeCluster         ResourceType = "CLUSTER"
	ResourceTypeTransactionalID ResourceType = "TRANSACTIONAL_ID"
)

// PatternType is the name-matching mode of an ACL policy resource.
type PatternType string

// Supported pattern types.
const (
	PatternTypeLiteral  PatternType = "LITERAL"
	PatternTypePrefixed PatternType = "PREFIXED"
)

// Action is the Kafka operation an ACL policy allows or denies.
type Action string

// Supported ACL actions.
const (
	ActionAll             Action = "ALL"
	ActionRead            Action = "READ"
	ActionWrite           Action = "WRITE"
	ActionCreate          Action = "CREATE"
	ActionDelete          Action = "DELETE"
	ActionAlter           Action = "ALTER"
	ActionDescribe        Action = "DESCRIBE"
	ActionClusterAction   Action = "CLUSTER_ACTION"
	ActionDescribeConfigs Action = "DESCRIBE_CONFIGS"
	ActionAlterConfigs    Action = "ALTER_CONFIGS"
	ActionIdempotentWrite Action = "IDEMPOTENT_WRITE"
)

// Effect is the outcome of a matching ACL policy.
type Effect string

// Supported effects.
const (
	EffectAllow Effect = "ALLOW"
	EffectDeny  Effect = "DENY"
)

// SchemaType is the serialization format of a registered schema.
type SchemaType string

// Supported schema types.
const (
	SchemaTypeAvro     SchemaType = "AVRO"
	SchemaTypeJSON     SchemaType = "JSON"
	SchemaTypeProtobuf SchemaType = "PROTOBUF"
)

// SerializeAttribute is the part of the record a schema applies to.
type SerializeAttribute string

// Supported serialize attributes.
const (
	SerializeAttributeKey   SerializeAttribute = "KEY"
	SerializeAttributeValue SerializeAttribute = "VALUE"
)

// CompatibilityMode is the schema registry compatibility setting.
type CompatibilityMode string

// Supported compatibility modes.
const (
	CompatibilityBackward           CompatibilityMode = "BACKWARD"
	CompatibilityBackwardTransitive CompatibilityMode = "BACKWARD_TRANSITIVE"
	CompatibilityForward            CompatibilityMode = "FORWARD"
	CompatibilityForwardTransitive  CompatibilityMode = "FORWARD_TRANSITIVE"
	CompatibilityFull               CompatibilityMode = "FULL"
	CompatibilityFullTransitive     CompatibilityMode = "FULL_TRANSITIVE"
	CompatibilityNone               CompatibilityMode = "NONE"
)

func enumValues[T ~string](values ...T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

var (
	securityProtocols = enumValues(
		SecurityProtocolPlaintext, SecurityProtocolSSL,
		SecurityProtocolSASLPlaintext, SecurityProtocolSASLSSL,
	)
	saslMechanisms = enumValues(
		SASLMechanismPlain, SASLMechanismGSSAPI, SASLMechanismOauthBearer,
		SASLMechanismScramSHA256, SASLMechanismScramSHA512,
	)
	deletionPolicies = enumValues(DeletionPolicyRetain, DeletionPolicyDelete)
	resourceTypes    = enumValues(
		ResourceTypeTopic, ResourceTypeGroup, ResourceTypeCluster, ResourceTypeTransactionalID,
	)
	patternTypes = enumValues(PatternTypeLiteral, PatternTypePrefixed)
	actions      = enumValues(
		ActionAll, ActionRead, ActionWrite, ActionCreate, ActionDelete,
		ActionAlter, ActionDescribe, ActionClusterAction,
		ActionDescribeConfigs, ActionAlterConfigs, ActionIdempotentWrite,
	)
	effects             = enumValues(EffectAllow, EffectDeny)
	schemaTypes         = enumValues(SchemaTypeAvro, SchemaTypeJSON, SchemaTypeProtobuf)
	serializeAttributes = enumValues(SerializeAttributeKey, SerializeAttributeValue)
	compatibilityModes  = enumValues(
		CompatibilityBackward, CompatibilityBackwardTransitive,
		CompatibilityForward, CompatibilityForwardTransitive,
		CompatibilityFull, CompatibilityFullTransitive, CompatibilityNone,
	)
)
