package catalog

import (
	"fmt"
	"strings"
)

// VideoType distinguishes hosted YouTube videos from plain files.
type VideoType string

const (
	VideoYouTube VideoType = "youtube"
	VideoFile    VideoType = "file"
)

// Video is one entry of the video gallery.
type Video struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Type      VideoType `yaml:"type"`
	YouTubeID string    `yaml:"youtubeId,omitempty"`
	Src       string    `yaml:"src,omitempty"`
	Thumbnail string    `yaml:"thumbnail,omitempty"`
}

// VideoList is the static video gallery.
type VideoList struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Videos      []Video `yaml:"videos"`
}

// ThumbnailURL derives the preview image for the video.
func (v Video) ThumbnailURL() string {
	if v.Type == VideoYouTube && strings.TrimSpace(v.YouTubeID) != "" {
		return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", v.YouTubeID)
	}
	return v.Thumbnail
}

// PlayURL returns the address that plays the video.
func (v Video) PlayURL() string {
	if v.Type == VideoYouTube && strings.TrimSpace(v.YouTubeID) != "" {
		return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1", v.YouTubeID)
	}
	return v.Src
}
