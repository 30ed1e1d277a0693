package provider

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/atlaskit/pkg/atlas"
)

// channelExts lists the source-texture extensions probed by DirLookup,
// in preference order.
var channelExts = []string{".png", ".tga", ".bmp"}

// DirLookup resolves material channels by filename convention: a
// channel texture for material "body" and role "normal" is the first of
// "body_bake_normal.*" or "body_normal.*" found in the directory.
// Absence of a file is a valid unbound state, never an error.
type DirLookup struct {
	Dir      string
	Provider *FileProvider
	Log      *zap.Logger
}

// FindTexture implements atlas.ChannelLookup.
func (l *DirLookup) FindTexture(mat atlas.Material, role atlas.Role) (atlas.Handle, bool) {
	stems := []string{
		mat.Name() + "_bake_" + string(role),
		mat.Name() + "_" + string(role),
	}
	for _, stem := range stems {
		for _, ext := range channelExts {
			path := filepath.Join(l.Dir, stem+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			h, err := l.Provider.Load(path)
			if err != nil {
				if l.Log != nil {
					l.Log.Warn("failed loading channel texture",
						zap.String("material", mat.Name()),
						zap.String("role", string(role)),
						zap.String("path", path),
						zap.Error(err))
				}
				continue
			}
			return h, true
		}
	}
	return nil, false
}

// ManifestLookup resolves material channels from an explicit
// material -> role -> file path table, as given by a build manifest.
type ManifestLookup struct {
	Paths    map[string]map[atlas.Role]string
	Provider *FileProvider
	Log      *zap.Logger
}

// FindTexture implements atlas.ChannelLookup. A path that fails to load
// is logged and treated as unbound.
func (l *ManifestLookup) FindTexture(mat atlas.Material, role atlas.Role) (atlas.Handle, bool) {
	roles, ok := l.Paths[mat.Name()]
	if !ok {
		return nil, false
	}
	path, ok := roles[role]
	if !ok || path == "" {
		return nil, false
	}
	h, err := l.Provider.Load(path)
	if err != nil {
		if l.Log != nil {
			l.Log.Warn("failed loading manifest texture",
				zap.String("material", mat.Name()),
				zap.String("role", string(role)),
				zap.String("path", path),
				zap.Error(err))
		}
		return nil, false
	}
	return h, true
}
