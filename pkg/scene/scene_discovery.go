package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene ID is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene and its recommended render size
type SceneInfo struct {
	ID          string
	DisplayName string
	Description string
	Width       int
	Height      int
}

type builtinScene struct {
	info  SceneInfo
	build func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info: SceneInfo{
			Description: "White unit sphere under a single white light",
			Width:       400,
			Height:      400,
		},
		build: NewDefaultScene,
	},
	"rgb": {
		info: SceneInfo{
			Description: "Red, green and blue spheres with key and fill lights",
			Width:       400,
			Height:      225, // 16:9 aspect ratio
		},
		build: NewRGBScene,
	},
	"sphere-grid": {
		info: SceneInfo{
			Description: "Wall of spheres with varying hue, chroma and shininess",
			Width:       640,
			Height:      360,
		},
		build: NewSphereGridScene,
	},
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id := range builtinScenes {
		scenes = append(scenes, describe(id))
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Lookup builds the built-in scene with the given ID
func Lookup(id string) (*Scene, SceneInfo, error) {
	if _, ok := builtinScenes[id]; !ok {
		return nil, SceneInfo{}, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return builtinScenes[id].build(), describe(id), nil
}

func describe(id string) SceneInfo {
	info := builtinScenes[id].info
	info.ID = id
	info.DisplayName = titleCase(id)
	return info
}

// titleCase converts a string to title case (e.g., "sphere-grid" -> "Sphere Grid")
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
