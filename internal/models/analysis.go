package models

// Analysis is the full result record for one analyzed post. Every
// per-dimension score and the aggregate Score lie in [0,1]. Detail fields
// inside the dimension results are populated only in verbose mode.
type Analysis struct {
	Author   string `json:"author"`
	Permlink string `json:"permlink"`
	URL      string `json:"url,omitempty"`

	Title   TitleResult   `json:"title"`
	Body    BodyResult    `json:"body"`
	Emojis  EmojiResult   `json:"emojis"`
	Images  ImageResult   `json:"images"`
	Tagging MentionResult `json:"tagging"`
	Tags    TagResult     `json:"tags"`

	Deep  bool    `json:"deep"`
	Score float64 `json:"score"`
}

// TitleResult scores title readability and keyword usage.
type TitleResult struct {
	Score  float64      `json:"score"`
	Detail *TitleDetail `json:"detail,omitempty"`
}

// TitleDetail carries the title analyzer diagnostics.
type TitleDetail struct {
	Title       string         `json:"title"`
	Cleaned     string         `json:"cleaned"`
	BelowMin    bool           `json:"below_min"`
	AboveMax    bool           `json:"above_max"`
	Uppercase   float64        `json:"uppercase"`
	Readability float64        `json:"readability"`
	KeywordHit  float64        `json:"keyword_hit"`
	Keywords    map[string]int `json:"keywords,omitempty"`
	Emojis      []string       `json:"emojis,omitempty"`
}

// BodyResult scores body substance (estimated English word count).
type BodyResult struct {
	Score  float64     `json:"score"`
	Detail *BodyDetail `json:"detail,omitempty"`
}

// BodyDetail carries the body analyzer diagnostics.
type BodyDetail struct {
	Words   int     `json:"words"`
	English float64 `json:"english"`
	Over400 bool    `json:"over_400"`
	Over800 bool    `json:"over_800"`
}

// EmojiResult scores emoji density against the configured limit.
type EmojiResult struct {
	Score  float64      `json:"score"`
	Detail *EmojiDetail `json:"detail,omitempty"`
}

// EmojiDetail carries the emoji analyzer diagnostics.
type EmojiDetail struct {
	Limit  int      `json:"limit"`
	Count  int      `json:"count"`
	Emojis []string `json:"emojis,omitempty"`
}

// ImageResult scores the image-to-text ratio.
type ImageResult struct {
	Score  float64      `json:"score"`
	Detail *ImageDetail `json:"detail,omitempty"`
}

// ImageDetail carries the image analyzer diagnostics.
type ImageDetail struct {
	Count     int `json:"count"`
	Sequences int `json:"sequences"`
}

// MentionResult scores user-mention density against the configured limit.
type MentionResult struct {
	Score  float64        `json:"score"`
	Detail *MentionDetail `json:"detail,omitempty"`
}

// MentionDetail carries the mention analyzer diagnostics.
type MentionDetail struct {
	Limit int `json:"limit"`
	Count int `json:"count"`
}

// TagResult scores the declared tag count against the configured limit.
type TagResult struct {
	Score  float64    `json:"score"`
	Detail *TagDetail `json:"detail,omitempty"`
}

// TagDetail carries the tag analyzer diagnostics.
type TagDetail struct {
	Limit int `json:"limit"`
	Count int `json:"count"`
}
