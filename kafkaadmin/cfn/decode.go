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

package cfn

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a configuration document written in the CloudFormation
// YAML dialect. Intrinsic short tags (!Ref, !Sub, !GetAtt, !ImportValue, ...)
// are expanded into their long-form mappings so they travel through document
// merging and model validation as opaque plain values.
func DecodeYAML(content []byte) (map[string]any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, errors.Wrap(err, "parsing YAML document")
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return map[string]any{}, nil
	}
	value, err := decodeNode(root.Content[0])
	if err != nil {
		return nil, err
	}
	doc, ok := value.(map[string]any)
	if !ok {
		return nil, errors.Errorf("document root must be a mapping, got %T", value)
	}
	return doc, nil
}

func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, errors.Wrap(err, "decoding mapping key")
			}
			value, err := decodeNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[key] = value
		}
		if name, ok := intrinsicName(node.Tag); ok {
			return expandIntrinsic(name, out), nil
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		if name, ok := intrinsicName(node.Tag); ok {
			return expandIntrinsic(name, out), nil
		}
		return out, nil
	case yaml.ScalarNode:
		if name, ok := intrinsicName(node.Tag); ok {
			return expandIntrinsic(name, node.Value), nil
		}
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, errors.Wrap(err, "decoding scalar")
		}
		return value, nil
	default:
		return nil, errors.Errorf("unsupported YAML node kind %d", node.Kind)
	}
}

// intrinsicName reports whether tag is a custom short tag and, if so, the
// intrinsic function name it stands for. Standard "!!" tags are not custom.
func intrinsicName(tag string) (string, bool) {
	if !strings.HasPrefix(tag, "!") || strings.HasPrefix(tag, "!!") {
		return "", false
	}
	return strings.TrimPrefix(tag, "!"), true
}

// expandIntrinsic converts a short-tagged value into the long-form mapping
// CloudFormation accepts in JSON templates. Ref and Condition are keys of
// their own; everything else is namespaced under Fn::. A scalar !GetAtt is
// additionally split on its first dot into [logical name, attribute].
func expandIntrinsic(name string, value any) map[string]any {
	switch name {
	case "Ref", "Condition":
		return map[string]any{name: value}
	case "GetAtt":
		if s, ok := value.(string); ok {
			parts := strings.SplitN(s, ".", 2)
			items := make([]any, len(parts))
			for i, p := range parts {
				items[i] = p
			}
			return map[string]any{"Fn::GetAtt": items}
		}
		return map[string]any{"Fn::GetAtt": value}
	default:
		return map[string]any{"Fn::" + name: value}
	}
}
