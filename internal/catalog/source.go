package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var builtin embed.FS

// builtinSources lists the compiled-in taxonomies in declaration order.
var builtinSources = []string{
	"data/kg.yaml",
	"data/primary-secondary.yaml",
}

const builtinVideos = "data/videos.yaml"

// ParseCategory decodes a YAML taxonomy source.
func ParseCategory(data []byte) (Category, error) {
	var cat Category
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Category{}, fmt.Errorf("decode category: %w", err)
	}
	if strings.TrimSpace(cat.ID) == "" {
		return Category{}, fmt.Errorf("decode category: missing id")
	}
	return cat, nil
}

// ParseVideos decodes a YAML video list.
func ParseVideos(data []byte) (VideoList, error) {
	var list VideoList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return VideoList{}, fmt.Errorf("decode videos: %w", err)
	}
	return list, nil
}

// BuiltinSources returns the taxonomies compiled into the binary.
func BuiltinSources() ([]Category, error) {
	sources := make([]Category, 0, len(builtinSources))
	for _, name := range builtinSources {
		data, err := builtin.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		cat, err := ParseCategory(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		sources = append(sources, cat)
	}
	return sources, nil
}

// BuiltinVideos returns the compiled-in video list.
func BuiltinVideos() (VideoList, error) {
	data, err := builtin.ReadFile(builtinVideos)
	if err != nil {
		return VideoList{}, fmt.Errorf("read %s: %w", builtinVideos, err)
	}
	return ParseVideos(data)
}

// LoadDir reads every *.yaml taxonomy in dir, in lexical order. A file named
// videos.yaml is decoded as the video list instead.
func LoadDir(dir string) ([]Category, VideoList, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, VideoList{}, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(matches)
	var (
		sources []Category
		videos  VideoList
	)
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, VideoList{}, fmt.Errorf("read %s: %w", path, err)
		}
		if filepath.Base(path) == "videos.yaml" {
			if videos, err = ParseVideos(data); err != nil {
				return nil, VideoList{}, fmt.Errorf("%s: %w", path, err)
			}
			continue
		}
		cat, err := ParseCategory(data)
		if err != nil {
			return nil, VideoList{}, fmt.Errorf("%s: %w", path, err)
		}
		sources = append(sources, cat)
	}
	return sources, videos, nil
}
