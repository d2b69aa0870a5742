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

// Package cfn holds the CloudFormation template document model used to declare
// Kafka admin resources: the template container, the intrinsic functions the
// generated resources rely on, and a YAML decoder that understands the
// CloudFormation intrinsic short tags.
package cfn

import (
	"bytes"
	"encoding/json"
	"regexp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const templateFormatVersion = "2010-09-09"

var logicalIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Resource is a single resource declaration within a template.
type Resource struct {
	Type           string `json:"Type"`
	DeletionPolicy string `json:"DeletionPolicy,omitempty"`
	Properties     any    `json:"Properties,omitempty"`
}

// Template is a CloudFormation template document under construction.
type Template struct {
	Description string

	resources map[string]*Resource
}

// NewTemplate returns an empty template with the given description.
func NewTemplate(description string) *Template {
	return &Template{
		Description: description,
		resources:   make(map[string]*Resource),
	}
}

// AddResource registers a resource declaration under its logical ID. Logical
// IDs must be alphanumeric and unique within the template; a duplicate ID
// means two entities collapsed to the same identifier and is rejected rather
// than silently shadowed.
func (t *Template) AddResource(logicalID string, r *Resource) error {
	if !logicalIDPattern.MatchString(logicalID) {
		return errors.Errorf("logical ID %q is not alphanumeric", logicalID)
	}
	if _, ok := t.resources[logicalID]; ok {
		return errors.Errorf("logical ID %q is already declared in the template", logicalID)
	}
	t.resources[logicalID] = r
	return nil
}

// Resource returns the declaration registered under logicalID, if any.
func (t *Template) Resource(logicalID string) (*Resource, bool) {
	r, ok := t.resources[logicalID]
	return r, ok
}

// ResourceCount returns the number of declarations in the template.
func (t *Template) ResourceCount() int {
	return len(t.resources)
}

type templateDocument struct {
	AWSTemplateFormatVersion string               `json:"AWSTemplateFormatVersion"`
	Description              string               `json:"Description,omitempty"`
	Resources                map[string]*Resource `json:"Resources"`
}

// JSON renders the template as an indented JSON document.
func (t *Template) JSON() ([]byte, error) {
	doc := templateDocument{
		AWSTemplateFormatVersion: templateFormatVersion,
		Description:              t.Description,
		Resources:                t.resources,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "rendering template to JSON")
	}
	return out, nil
}

// YAML renders the template as a YAML document. The JSON form is the source
// of truth; it is re-encoded so that both formats carry identical content.
func (t *Template) YAML() ([]byte, error) {
	raw, err := t.JSON()
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "rendering template to YAML")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "rendering template to YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
