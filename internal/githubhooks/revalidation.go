package githubhooks

import (
	"folio/internal/models"
	"folio/internal/revalidate"
)

// ChangedPaths returns the union of added, removed and modified paths across
// the head commit and every listed commit, de-duplicated in first-seen order.
func ChangedPaths(payload models.WebhookPayload) []string {
	seen := map[string]struct{}{}
	paths := []string{}

	collect := func(commit *models.Commit) {
		if commit == nil {
			return
		}
		for _, path := range commit.ChangedPaths() {
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			paths = append(paths, path)
		}
	}

	collect(payload.HeadCommit)
	for i := range payload.Commits {
		collect(&payload.Commits[i])
	}

	return paths
}

// PlanRevalidation lists the cache tags an accepted push invalidates: one
// per changed file plus the blog listing when anything changed.
func PlanRevalidation(payload models.WebhookPayload) []string {
	paths := ChangedPaths(payload)

	tags := make([]string, 0, len(paths)+1)
	for _, path := range paths {
		tags = append(tags, revalidate.BlogPostTag(path))
	}

	if len(paths) > 0 {
		tags = append(tags, revalidate.TagBlogs)
	}

	return tags
}
