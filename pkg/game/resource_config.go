package game

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup represents a collection of related resources that can be loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
	Fonts  []FontResource  `yaml:"fonts"`
}

// ImageResource represents a single image resource definition.
// When Path is empty or the file is absent, a Width x Height block of Color
// is generated instead, so every ID always resolves to a drawable image.
//
// Examples:
//
//	File image:
//	  - id: IMAGE_START_LOGO
//	    path: images/Start_Screen_Logo.png
//
//	Placeholder:
//	  - id: IMAGE_TILE_DIRT
//	    color: "#c4a484"
//	    width: 24
//	    height: 24
type ImageResource struct {
	ID     string `yaml:"id"`
	Path   string `yaml:"path,omitempty"`
	Color  string `yaml:"color,omitempty"` // "#rrggbb" or "#rrggbbaa"
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// SoundResource represents a single sound resource definition.
// Either Path (.ogg/.mp3/.au) or a synthesized Tone must be given.
//
// Example:
//   - id: SOUND_CLICK
//     tone: {frequency: 880, duration: 0.05}
type SoundResource struct {
	ID   string        `yaml:"id"`
	Path string        `yaml:"path,omitempty"`
	Tone *ToneResource `yaml:"tone,omitempty"`
}

// ToneResource describes a short generated sine tone.
type ToneResource struct {
	Frequency float64 `yaml:"frequency"` // Hz
	Duration  float64 `yaml:"duration"`  // seconds
}

// FontResource represents a single font resource definition.
// An empty Path selects the bundled Go Regular face.
type FontResource struct {
	ID   string  `yaml:"id"`
	Path string  `yaml:"path,omitempty"`
	Size float64 `yaml:"size"`
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}

// parseHexColor parses "#rrggbb" / "#rrggbbaa".
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
