package models

// Character is a speaker referenced by dialogue lines. Authored content,
// read-only at runtime.
type Character struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	AvatarURL *string `db:"avatar_url" json:"avatarUrl,omitempty"`
}

// StoryNode is a node of the authored story graph. It owns an ordered list of
// dialogue lines and a set of outgoing choice edges.
type StoryNode struct {
	ID            int64   `db:"id" json:"id"`
	Title         string  `db:"title" json:"title"`
	Description   string  `db:"description" json:"description"`
	BackgroundURL *string `db:"background_url" json:"backgroundUrl,omitempty"`
	AudioURL      *string `db:"audio_url" json:"audioUrl,omitempty"`
	IsStart       bool    `db:"is_start" json:"isStart"`
}

// Dialogue is one line of narration or speech within a node. Order defines the
// sequence; values only need to be strictly sortable, not contiguous.
type Dialogue struct {
	ID           int64  `db:"id" json:"id"`
	StoryNodeID  int64  `db:"story_node_id" json:"storyNodeId"`
	CharacterID  *int64 `db:"character_id" json:"characterId,omitempty"`
	Order        int    `db:"ord" json:"order"`
	Text         string `db:"text" json:"text"`
	HealthEffect *int   `db:"health_effect" json:"healthEffect,omitempty"`
}

// Choice is a directed edge of the story graph. StoryNodeID is the owning
// (source) node; NextStoryNodeID is the destination. Self-loops are legal.
type Choice struct {
	ID              int64   `db:"id" json:"id"`
	StoryNodeID     int64   `db:"story_node_id" json:"storyNodeId"`
	NextStoryNodeID int64   `db:"next_story_node_id" json:"nextStoryNodeId"`
	Text            string  `db:"text" json:"text"`
	HealthDelta     *int    `db:"health_delta" json:"healthDelta,omitempty"`
	AudioURL        *string `db:"audio_url" json:"audioUrl,omitempty"`
}
