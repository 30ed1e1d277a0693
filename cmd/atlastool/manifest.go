package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/atlaskit/pkg/atlas"
)

// Manifest describes one atlas build: the materials to pack and where
// their channel textures come from.
type Manifest struct {
	// Name becomes part of the output image names.
	Name string `yaml:"name"`
	// Dir optionally enables filename-convention lookup for channels not
	// listed explicitly (<material>_<role>.<ext> inside Dir).
	Dir string `yaml:"dir"`

	Materials []ManifestMaterial `yaml:"materials"`
}

// ManifestMaterial is one material entry with explicit channel paths.
type ManifestMaterial struct {
	Name     string            `yaml:"name"`
	Textures map[string]string `yaml:"textures"`
}

// LoadManifest reads and validates a manifest file. Relative texture
// paths are resolved against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if m.Name == "" {
		m.Name = filepath.Base(path)
		m.Name = m.Name[:len(m.Name)-len(filepath.Ext(m.Name))]
	}
	if len(m.Materials) == 0 {
		return nil, fmt.Errorf("manifest %s lists no materials", path)
	}

	base := filepath.Dir(path)
	seen := make(map[string]bool, len(m.Materials))
	for i, mat := range m.Materials {
		if mat.Name == "" {
			return nil, fmt.Errorf("material %d has no name", i)
		}
		if seen[mat.Name] {
			return nil, fmt.Errorf("duplicate material %q", mat.Name)
		}
		seen[mat.Name] = true

		for role, texPath := range mat.Textures {
			if !atlas.Role(role).Valid() {
				return nil, fmt.Errorf("material %q: unknown channel role %q", mat.Name, role)
			}
			if texPath != "" && !filepath.IsAbs(texPath) {
				m.Materials[i].Textures[role] = filepath.Join(base, texPath)
			}
		}
	}
	if m.Dir != "" && !filepath.IsAbs(m.Dir) {
		m.Dir = filepath.Join(base, m.Dir)
	}
	return &m, nil
}

// MaterialNames returns the materials in manifest order.
func (m *Manifest) MaterialNames() []atlas.Material {
	mats := make([]atlas.Material, len(m.Materials))
	for i, mat := range m.Materials {
		mats[i] = atlas.MaterialName(mat.Name)
	}
	return mats
}

// TexturePaths returns the explicit material -> role -> path table.
func (m *Manifest) TexturePaths() map[string]map[atlas.Role]string {
	paths := make(map[string]map[atlas.Role]string, len(m.Materials))
	for _, mat := range m.Materials {
		if len(mat.Textures) == 0 {
			continue
		}
		roles := make(map[atlas.Role]string, len(mat.Textures))
		for role, p := range mat.Textures {
			roles[atlas.Role(role)] = p
		}
		paths[mat.Name] = roles
	}
	return paths
}
