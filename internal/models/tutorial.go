package models

// TutorialCategory groups video tutorials and points at a YouTube playlist.
type TutorialCategory struct {
	ID          string `json:"id" mapstructure:"id"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
	Icon        string `json:"icon" mapstructure:"icon"`
	Color       string `json:"color" mapstructure:"color"`
	PlaylistID  string `json:"playlistId" mapstructure:"playlistId"`
}

type Tutorial struct {
	ID          string `json:"id" mapstructure:"id"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
	// Category is a TutorialCategory id.
	Category  string `json:"category" mapstructure:"category"`
	Duration  string `json:"duration" mapstructure:"duration"`
	Level     string `json:"level" mapstructure:"level"`
	Thumbnail string `json:"thumbnail" mapstructure:"thumbnail"`
	VideoID   string `json:"videoId" mapstructure:"videoId"`
}

type Video struct {
	ID        string `json:"id" mapstructure:"id"`
	Title     string `json:"title" mapstructure:"title"`
	Duration  string `json:"duration" mapstructure:"duration"`
	Thumbnail string `json:"thumbnail" mapstructure:"thumbnail"`
}

type RelatedCourse struct {
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
	Link        string `json:"link" mapstructure:"link"`
}

// Playlist is the detail page of a tutorial category, keyed by Slug.
type Playlist struct {
	Slug           string          `json:"slug" mapstructure:"slug"`
	Title          string          `json:"title" mapstructure:"title"`
	Description    string          `json:"description" mapstructure:"description"`
	Icon           string          `json:"icon" mapstructure:"icon"`
	Color          string          `json:"color" mapstructure:"color"`
	PlaylistID     string          `json:"playlistId" mapstructure:"playlistId"`
	VideoCount     int             `json:"videoCount" mapstructure:"videoCount"`
	TotalDuration  string          `json:"totalDuration" mapstructure:"totalDuration"`
	Difficulty     string          `json:"difficulty" mapstructure:"difficulty"`
	Objectives     []string        `json:"objectives" mapstructure:"objectives"`
	Overview       string          `json:"overview" mapstructure:"overview"`
	Videos         []Video         `json:"videos" mapstructure:"videos"`
	RelatedCourses []RelatedCourse `json:"relatedCourses" mapstructure:"relatedCourses"`
}
