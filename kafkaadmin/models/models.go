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

// Package models defines the typed configuration model for Kafka topics, ACL
// policies and schema registrations, and the builder that validates a merged
// canonical document into it.
package models

// Model is the validated configuration for one generation run.
type Model struct {
	Globals Globals       `mapstructure:"Globals"`
	Schemas *SchemasDef   `mapstructure:"Schemas"`
	Topics  TopicsSection `mapstructure:"Topics"`
	ACLs    ACLsSection   `mapstructure:"ACLs"`
}

// Globals carries the Kafka cluster connection settings shared by every
// generated resource.
type Globals struct {
	BootstrapServers string           `mapstructure:"BootstrapServers"`
	SASLUsername     string           `mapstructure:"SASLUsername"`
	SASLPassword     string           `mapstructure:"SASLPassword"`
	SASLMechanism    SASLMechanism    `mapstructure:"SASLMechanism"`
	SecurityProtocol SecurityProtocol `mapstructure:"SecurityProtocol"`
}

// SchemasDef carries section-level schema registry settings. Per-schema
// values take precedence over these.
type SchemasDef struct {
	RegistryURL      string `mapstructure:"RegistryUrl"`
	RegistryUsername string `mapstructure:"RegistryUsername"`
	RegistryPassword string `mapstructure:"RegistryPassword"`
	FunctionName     string `mapstructure:"FunctionName"`
}

// TopicsSection holds the declared topics and their section defaults.
// FunctionName, when set, selects the function-backed resource variant for
// every topic in the section.
type TopicsSection struct {
	FunctionName      string         `mapstructure:"FunctionName"`
	ReplicationFactor int            `mapstructure:"ReplicationFactor"`
	DeletionPolicy    DeletionPolicy `mapstructure:"DeletionPolicy"`
	Topics            []Topic        `mapstructure:"Topics"`
}

// Topic is a single topic declaration. Name is the unique key used by the
// document merge; uniqueness is a property of the merge, not re-checked here.
type Topic struct {
	Name              string         `mapstructure:"Name"`
	ReplicationFactor int            `mapstructure:"ReplicationFactor"`
	Settings          map[string]any `mapstructure:"Settings"`
	Schema            *Schema        `mapstructure:"Schema"`
}

// ACLsSection holds the declared ACL policies. Policies carry no unique key;
// the merge deduplicates them by full structural equality.
type ACLsSection struct {
	FunctionName string   `mapstructure:"FunctionName"`
	Policies     []Policy `mapstructure:"Policies"`
}

// Policy is a single ACL policy entry.
type Policy struct {
	ResourceType ResourceType `mapstructure:"ResourceType"`
	Resource     string       `mapstructure:"Resource"`
	Principal    string       `mapstructure:"Principal"`
	PatternType  PatternType  `mapstructure:"PatternType"`
	Action       Action       `mapstructure:"Action"`
	Effect       Effect       `mapstructure:"Effect"`
	Host         string       `mapstructure:"Host"`
}

// Schema is a schema registration. Definition is either inline structured
// data or a string; strings are tried as filesystem paths at projection time
// and fall back to literal content.
type Schema struct {
	Type               SchemaType         `mapstructure:"Type"`
	SerializeAttribute SerializeAttribute `mapstructure:"SerializeAttribute"`
	Definition         any                `mapstructure:"Definition"`
	CompatibilityMode  CompatibilityMode  `mapstructure:"CompatibilityMode"`
	RegistryURL        string             `mapstructure:"RegistryUrl"`
	RegistryUsername   string             `mapstructure:"RegistryUsername"`
	RegistryPassword   string             `mapstructure:"RegistryPassword"`
}
