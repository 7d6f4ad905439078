package models

import "encoding/json"

// Post is one fetched post record. Immutable once fetched; the caller owns
// it for the duration of a single analysis.
type Post struct {
	Author   string `json:"author" binding:"required"`
	Permlink string `json:"permlink" binding:"required"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	URL      string `json:"url,omitempty"`

	// JSONMetadata is the raw json_metadata field as returned by the node.
	// Nodes ship it either as an embedded object or as a JSON-encoded
	// string; Metadata normalizes both shapes.
	JSONMetadata json.RawMessage `json:"json_metadata,omitempty"`
}

// Metadata parses the post's json_metadata into a map. Returns an empty
// map when the field is absent or malformed.
func (p *Post) Metadata() map[string]interface{} {
	if len(p.JSONMetadata) == 0 {
		return map[string]interface{}{}
	}

	parsed := make(map[string]interface{})
	if err := json.Unmarshal(p.JSONMetadata, &parsed); err == nil {
		return parsed
	}

	// Older nodes double-encode the metadata as a JSON string.
	var encoded string
	if err := json.Unmarshal(p.JSONMetadata, &encoded); err == nil {
		parsed = make(map[string]interface{})
		if err := json.Unmarshal([]byte(encoded), &parsed); err == nil {
			return parsed
		}
	}
	return map[string]interface{}{}
}

// Tags returns the post's declared category tags, in declaration order.
func (p *Post) Tags() []string {
	raw, ok := p.Metadata()["tags"].([]interface{})
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		if s, ok := t.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}
