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

// Package merge combines partial Kafka admin configuration documents into a
// single canonical document. Documents are merged pairwise in input order;
// sections carry their own precedence rules: Globals and Schemas are shallow
// field-level merges, topic lists are keyed by Name, and ACL policy lists are
// deduplicated by full structural equality.
package merge

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidOverride is returned when the override document's top level is
// not a mapping.
var ErrInvalidOverride = errors.New("override document content does not match the expected pattern")

// Merge combines override into primary and returns the merged document.
// Neither input is mutated; the result is built on a deep copy of primary.
//
// Globals and Schemas sections merge field by field, a non-empty override
// field replacing the primary's. A Schemas section absent from primary is
// adopted wholesale. The Topics and ACLs entity lists are only combined when
// extendLists is true; otherwise only the sections' scalar fields merge.
func Merge(primary map[string]any, override any, extendLists bool) (map[string]any, error) {
	overrideDoc, ok := override.(map[string]any)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidOverride, "expected a mapping, got %T", override)
	}
	final := copyMap(primary)
	mergeFields(final, overrideDoc, "Globals", nil)
	mergeFields(final, overrideDoc, "Schemas", nil)
	mergeACLs(final, overrideDoc, extendLists)
	mergeTopics(final, overrideDoc, extendLists)
	return final, nil
}

// mergeFields shallow-merges the named section's fields, skipping the listed
// list-valued keys. Empty override fields never clobber primary values.
func mergeFields(final, override map[string]any, section string, skip []string) {
	src, ok := override[section].(map[string]any)
	if !ok || len(src) == 0 {
		return
	}
	dst := sectionOf(final, section)
	for key, value := range src {
		if contains(skip, key) || isEmpty(value) {
			continue
		}
		dst[key] = copyValue(value)
	}
}

func mergeTopics(final, override map[string]any, extendLists bool) {
	src, ok := override["Topics"].(map[string]any)
	if !ok || len(src) == 0 {
		return
	}
	mergeFields(final, override, "Topics", []string{"Topics"})
	if !extendLists {
		return
	}
	overrideList := listOf(src, "Topics")
	if len(overrideList) == 0 {
		return
	}
	dst := sectionOf(final, "Topics")
	// The override list goes first; keying by Name then makes the primary's
	// entry for a duplicated topic the surviving one.
	concat := append(copySlice(overrideList), listOf(dst, "Topics")...)
	dst["Topics"] = dedupTopics(concat)
}

func mergeACLs(final, override map[string]any, extendLists bool) {
	src, ok := override["ACLs"].(map[string]any)
	if !ok || len(src) == 0 {
		return
	}
	mergeFields(final, override, "ACLs", []string{"Policies"})
	if !extendLists {
		return
	}
	overrideList := listOf(src, "Policies")
	if len(overrideList) == 0 {
		return
	}
	dst := sectionOf(final, "ACLs")
	concat := append(copySlice(overrideList), listOf(dst, "Policies")...)
	dst["Policies"] = dedupPolicies(concat)
}

// dedupTopics reduces the concatenated topic list to one entry per Name. The
// position of a Name is its first occurrence, the value its last.
func dedupTopics(topics []any) []any {
	position := make(map[string]int, len(topics))
	out := make([]any, 0, len(topics))
	for _, item := range topics {
		name := ""
		if topic, ok := item.(map[string]any); ok {
			name, _ = topic["Name"].(string)
		}
		if i, seen := position[name]; seen {
			out[i] = item
			continue
		}
		position[name] = len(out)
		out = append(out, item)
	}
	return out
}

// dedupPolicies reduces the concatenated policy list to structurally unique
// records, keeping the first occurrence of each.
func dedupPolicies(policies []any) []any {
	seen := make(map[string]struct{}, len(policies))
	out := make([]any, 0, len(policies))
	for _, item := range policies {
		key := structuralKey(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// structuralKey is a canonical rendering of a policy record: JSON marshaling
// of maps sorts keys, so equal records yield equal keys.
func structuralKey(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(b)
}

func sectionOf(doc map[string]any, name string) map[string]any {
	if m, ok := doc[name].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	doc[name] = m
	return m
}

func listOf(section map[string]any, name string) []any {
	l, _ := section[name].([]any)
	return l
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// isEmpty mirrors document-level truthiness: empty strings, collections and
// nil values never override a primary value.
func isEmpty(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case map[string]any:
		return len(value) == 0
	case []any:
		return len(value) == 0
	default:
		return false
	}
}

func copyMap(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = copyValue(v)
	}
	return out
}

func copySlice(src []any) []any {
	out := make([]any, 0, len(src))
	for _, v := range src {
		out = append(out, copyValue(v))
	}
	return out
}

func copyValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return copyMap(value)
	case []any:
		return copySlice(value)
	default:
		return value
	}
}
