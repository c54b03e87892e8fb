package models

import (
	"bytes"
	"encoding/json"
)

// commitFields lists the JSON keys decoded into named Commit fields; every
// other key is kept verbatim in Commit.Extra.
var commitFields = []string{"id", "message", "timestamp", "url", "author", "added", "removed", "modified"}

// Commit mirrors the upstream push-commit object. Known fields are typed;
// anything else the provider sends survives in Extra.
type Commit struct {
	ID        string        `json:"id" bson:"id"`
	Message   string        `json:"message" bson:"message"`
	Timestamp string        `json:"timestamp" bson:"timestamp"`
	URL       string        `json:"url,omitempty" bson:"url,omitempty"`
	Author    *CommitAuthor `json:"author,omitempty" bson:"author,omitempty"`
	Added     []string      `json:"added" bson:"added"`
	Removed   []string      `json:"removed" bson:"removed"`
	Modified  []string      `json:"modified" bson:"modified"`

	Extra map[string]json.RawMessage `json:"-" bson:"-"`
}

// CommitAuthor holds the author metadata attached to a commit.
type CommitAuthor struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Username string `json:"username,omitempty" bson:"username,omitempty"`
}

// ChangedPaths returns added, removed and modified paths in that order.
func (c Commit) ChangedPaths() []string {
	paths := make([]string, 0, len(c.Added)+len(c.Removed)+len(c.Modified))
	paths = append(paths, c.Added...)
	paths = append(paths, c.Removed...)
	paths = append(paths, c.Modified...)
	return paths
}

func (c Commit) MarshalJSON() ([]byte, error) {
	type commitAlias Commit

	known, err := json.Marshal(commitAlias(c))
	if err != nil || len(c.Extra) == 0 {
		return known, err
	}

	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}

	for key, value := range c.Extra {
		if _, taken := merged[key]; !taken {
			merged[key] = value
		}
	}

	return json.Marshal(merged)
}

func (c *Commit) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	type commitAlias Commit

	var known commitAlias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for _, key := range commitFields {
		delete(fields, key)
	}

	*c = Commit(known)
	c.Extra = nil
	if len(fields) > 0 {
		c.Extra = fields
	}

	return nil
}
