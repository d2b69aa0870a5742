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

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyDoc() map[string]any {
	return map[string]any{
		"Globals": map[string]any{},
		"Topics":  map[string]any{},
		"ACLs":    map[string]any{},
	}
}

func topicsDoc(topics ...map[string]any) map[string]any {
	list := make([]any, 0, len(topics))
	for _, t := range topics {
		list = append(list, t)
	}
	doc := emptyDoc()
	doc["Topics"] = map[string]any{"Topics": list}
	return doc
}

func policiesDoc(policies ...map[string]any) map[string]any {
	list := make([]any, 0, len(policies))
	for _, p := range policies {
		list = append(list, p)
	}
	doc := emptyDoc()
	doc["ACLs"] = map[string]any{"Policies": list}
	return doc
}

func TestMergeRejectsNonMappingOverride(t *testing.T) {
	_, err := Merge(emptyDoc(), []any{"Topics"}, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOverride)
}

func TestMergeGlobals(t *testing.T) {
	primary := emptyDoc()
	primary["Globals"] = map[string]any{
		"BootstrapServers": "broker-1:9092",
		"SASLUsername":     "svc-account",
	}
	override := map[string]any{
		"Globals": map[string]any{
			"BootstrapServers": "broker-2:9092",
			"SASLUsername":     "",
			"SecurityProtocol": "SASL_SSL",
		},
	}
	merged, err := Merge(primary, override, false)
	require.NoError(t, err)

	globals := merged["Globals"].(map[string]any)
	assert.Equal(t, "broker-2:9092", globals["BootstrapServers"])
	assert.Equal(t, "svc-account", globals["SASLUsername"], "empty override fields must not clobber")
	assert.Equal(t, "SASL_SSL", globals["SecurityProtocol"])
}

func TestMergeAdoptsSchemasSection(t *testing.T) {
	override := map[string]any{
		"Schemas": map[string]any{"RegistryUrl": "https://registry.internal"},
	}
	merged, err := Merge(emptyDoc(), override, true)
	require.NoError(t, err)

	schemas, ok := merged["Schemas"].(map[string]any)
	require.True(t, ok, "Schemas section absent from primary is adopted wholesale")
	assert.Equal(t, "https://registry.internal", schemas["RegistryUrl"])
}

func TestMergeTopicsPrimaryWinsOnDuplicateName(t *testing.T) {
	primary := topicsDoc(map[string]any{"Name": "t", "ReplicationFactor": 3})
	override := topicsDoc(map[string]any{"Name": "t", "ReplicationFactor": 1})

	merged, err := Merge(primary, override, true)
	require.NoError(t, err)

	topics := merged["Topics"].(map[string]any)["Topics"].([]any)
	require.Len(t, topics, 1)
	assert.Equal(t, 3, topics[0].(map[string]any)["ReplicationFactor"],
		"the primary-side record wins for a Name present in both lists")
}

func TestMergeTopicsExtendsAndOrders(t *testing.T) {
	primary := topicsDoc(
		map[string]any{"Name": "orders"},
		map[string]any{"Name": "shared", "ReplicationFactor": 3},
	)
	override := topicsDoc(
		map[string]any{"Name": "shared", "ReplicationFactor": 1},
		map[string]any{"Name": "payments"},
	)
	merged, err := Merge(primary, override, true)
	require.NoError(t, err)

	topics := merged["Topics"].(map[string]any)["Topics"].([]any)
	require.Len(t, topics, 3)
	// Override list goes first in the concatenation, so its names come first;
	// values for duplicated names come from the primary.
	assert.Equal(t, "shared", topics[0].(map[string]any)["Name"])
	assert.Equal(t, 3, topics[0].(map[string]any)["ReplicationFactor"])
	assert.Equal(t, "payments", topics[1].(map[string]any)["Name"])
	assert.Equal(t, "orders", topics[2].(map[string]any)["Name"])
}

func TestMergeTopicsSectionFieldsWithoutExtend(t *testing.T) {
	primary := topicsDoc(map[string]any{"Name": "orders"})
	override := map[string]any{
		"Topics": map[string]any{
			"DeletionPolicy": "Delete",
			"Topics":         []any{map[string]any{"Name": "ignored"}},
		},
	}
	merged, err := Merge(primary, override, false)
	require.NoError(t, err)

	section := merged["Topics"].(map[string]any)
	assert.Equal(t, "Delete", section["DeletionPolicy"])
	topics := section["Topics"].([]any)
	require.Len(t, topics, 1, "topic list is untouched when lists are not extended")
	assert.Equal(t, "orders", topics[0].(map[string]any)["Name"])
}

func TestMergeACLsDeduplicates(t *testing.T) {
	read := map[string]any{
		"ResourceType": "TOPIC", "Resource": "orders",
		"Principal": "User:app", "Action": "READ", "Effect": "ALLOW",
	}
	write := map[string]any{
		"ResourceType": "TOPIC", "Resource": "orders",
		"Principal": "User:app", "Action": "WRITE", "Effect": "ALLOW",
	}
	merged, err := Merge(policiesDoc(read), policiesDoc(read, write), true)
	require.NoError(t, err)

	policies := merged["ACLs"].(map[string]any)["Policies"].([]any)
	assert.Len(t, policies, 2, "exact-duplicate policy records collapse to one")
}

func TestMergeACLsIdempotent(t *testing.T) {
	a := policiesDoc(map[string]any{
		"ResourceType": "GROUP", "Resource": "consumers",
		"Principal": "User:app", "Action": "READ", "Effect": "ALLOW",
	})
	b := map[string]any{"ACLs": map[string]any{"Policies": []any{map[string]any{
		"ResourceType": "TOPIC", "Resource": "orders",
		"Principal": "User:app", "Action": "READ", "Effect": "ALLOW",
	}}}}

	once, err := Merge(a, b, true)
	require.NoError(t, err)
	twice, err := Merge(once, b, true)
	require.NoError(t, err)

	assert.Equal(t, once["ACLs"], twice["ACLs"],
		"re-merging an already merged document must not grow the policy set")
}

func TestMergeMatchesSequentialFold(t *testing.T) {
	a := topicsDoc(map[string]any{"Name": "one", "ReplicationFactor": 3})
	b := topicsDoc(map[string]any{"Name": "two"})
	c := topicsDoc(map[string]any{"Name": "one", "ReplicationFactor": 1})

	ab, err := Merge(a, b, true)
	require.NoError(t, err)
	abc, err := Merge(ab, c, true)
	require.NoError(t, err)

	folded := emptyDoc()
	for _, doc := range []map[string]any{a, b, c} {
		folded, err = Merge(folded, doc, true)
		require.NoError(t, err)
	}
	assert.Equal(t, folded["Topics"], abc["Topics"],
		"pairwise left-to-right merging is the engine's only composition order")
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	primary := topicsDoc(map[string]any{"Name": "orders", "ReplicationFactor": 3})
	override := topicsDoc(map[string]any{"Name": "orders", "ReplicationFactor": 1})

	merged, err := Merge(primary, override, true)
	require.NoError(t, err)

	merged["Topics"].(map[string]any)["Topics"].([]any)[0].(map[string]any)["Name"] = "mutated"
	assert.Equal(t, "orders",
		primary["Topics"].(map[string]any)["Topics"].([]any)[0].(map[string]any)["Name"])
	assert.Equal(t, "orders",
		override["Topics"].(map[string]any)["Topics"].([]any)[0].(map[string]any)["Name"])
}
