package githubhooks

import (
	"encoding/json"
	"testing"

	"folio/internal/models"
	"folio/internal/revalidate"

	"github.com/stretchr/testify/require"
)

func TestParseObject(t *testing.T) {
	fields, ok := parseObject([]byte(`  {"a":1,"b":{"c":2}}`))
	require.True(t, ok)
	require.True(t, populated(fields))
	require.Len(t, fields, 2)

	fields, ok = parseObject([]byte(`{}`))
	require.True(t, ok)
	require.False(t, populated(fields))

	for _, raw := range []string{"", "null", "[]", `"str"`, "42", "{", `{"a":}`} {
		_, ok := parseObject([]byte(raw))
		require.Falsef(t, ok, "input %q", raw)
	}
}

func TestDecodePayloadDefaults(t *testing.T) {
	fields, ok := parseObject([]byte(`{"commits":null,"head_commit":null,"zen":"x"}`))
	require.True(t, ok)

	payload, err := decodePayload(fields)
	require.NoError(t, err)
	require.NotNil(t, payload.Commits)
	require.Empty(t, payload.Commits)
	require.Nil(t, payload.HeadCommit)

	encoded, err := json.Marshal(payload)
	require.NoError(t, err)
	require.JSONEq(t, `{"commits":[],"head_commit":null}`, string(encoded))
}

func TestDecodePayloadRejectsWrongShapes(t *testing.T) {
	fields, ok := parseObject([]byte(`{"commits":"nope"}`))
	require.True(t, ok)

	_, err := decodePayload(fields)
	require.Error(t, err)
}

func TestPlanRevalidation(t *testing.T) {
	payload := models.WebhookPayload{
		HeadCommit: &models.Commit{Modified: []string{"b.md"}},
		Commits: []models.Commit{
			{Added: []string{"a.md"}, Modified: []string{"b.md"}},
			{Removed: []string{"c.md"}},
		},
	}

	require.Equal(t, []string{"b.md", "a.md", "c.md"}, ChangedPaths(payload))
	require.Equal(t, []string{
		revalidate.BlogPostTag("b.md"),
		revalidate.BlogPostTag("a.md"),
		revalidate.BlogPostTag("c.md"),
		revalidate.TagBlogs,
	}, PlanRevalidation(payload))
}

func TestPlanRevalidationWithoutFileLists(t *testing.T) {
	payload := models.WebhookPayload{Commits: []models.Commit{{ID: "c1"}}}

	require.Empty(t, ChangedPaths(payload))
	require.Empty(t, PlanRevalidation(payload))
}

func TestPlanRevalidationWithExplicitlyEmptyLists(t *testing.T) {
	empty := models.Commit{ID: "c1", Added: []string{}, Removed: []string{}, Modified: []string{}}
	payload := models.WebhookPayload{HeadCommit: &empty, Commits: []models.Commit{empty}}

	require.Empty(t, PlanRevalidation(payload))

	payload.HeadCommit = &models.Commit{ID: "c2", Added: []string{}, Removed: []string{}, Modified: []string{"a/index.md"}}
	require.Equal(t, []string{revalidate.BlogPostTag("a/index.md"), revalidate.TagBlogs}, PlanRevalidation(payload))
}
