package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

// Options carries inputs some scenes need from outside
type Options struct {
	OBJPath     string // Mesh for the obj scene
	TexturePath string // Optional image for the textures scene
	Seed        int64  // Seed for scenes with random placement or noise
}

type sceneEntry struct {
	info  SceneInfo
	build func(Options) (*Scene, error)
}

var registry = map[string]sceneEntry{
	"default": {
		SceneInfo{"default", "Two diffuse spheres under a sky"},
		func(Options) (*Scene, error) { return NewDefaultScene(), nil },
	},
	"cornell": {
		SceneInfo{"cornell", "Cornell box with a rotated box and a glass sphere"},
		func(Options) (*Scene, error) { return NewCornellScene(), nil },
	},
	"volume": {
		SceneInfo{"volume", "Cornell box filled with smoke and fog boxes"},
		func(Options) (*Scene, error) { return NewVolumeScene(), nil },
	},
	"textures": {
		SceneInfo{"textures", "Checker, marble and image textured spheres"},
		NewTextureScene,
	},
	"motion": {
		SceneInfo{"motion", "Field of spheres, some bouncing during the exposure"},
		func(o Options) (*Scene, error) { return NewMotionScene(o.Seed), nil },
	},
	"obj": {
		SceneInfo{"obj", "Wavefront OBJ mesh inside the Cornell box (requires -obj)"},
		NewOBJScene,
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, entry := range registry {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Load builds the named scene
func Load(name string, options Options) (*Scene, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	s, err := entry.build(options)
	if err != nil {
		return nil, fmt.Errorf("building scene %s: %w", name, err)
	}
	s.Name = name
	return s, nil
}
