// atlastool is a CLI for building texture atlases from image files on
// disk, without a host application.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/atlaskit/internal/config"
	"github.com/Faultbox/atlaskit/internal/logger"
	"github.com/Faultbox/atlaskit/internal/provider"
	"github.com/Faultbox/atlaskit/pkg/atlas"
)

func main() {
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	rest := args[1:]

	switch command {
	case "plan":
		cmdPlan(cfg, rest)
	case "build":
		cmdBuild(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`atlastool - texture atlas packing utility

Usage:
  atlastool [flags] <command> [args]

Commands:
  plan <manifest.yaml>    Analyze footprints and print the packed layout
  build <manifest.yaml>   Build atlas images and the UV layout file

Flags:
  -config path   Explicit config file
  -out dir       Output directory for atlas images
  -prefix name   Output image name prefix
  -target n      Skip builds with n or fewer materials
  -debug         Enable debug logging

Examples:
  atlastool plan hero.yaml
  atlastool -out ./Bake build hero.yaml`)
}

// newLookup builds the channel lookup for a manifest: explicit paths
// first, falling back to filename convention when the manifest names a
// texture directory.
func newLookup(m *Manifest, p *provider.FileProvider) atlas.ChannelLookup {
	manifest := &provider.ManifestLookup{
		Paths:    m.TexturePaths(),
		Provider: p,
		Log:      logger.Log,
	}
	if m.Dir == "" {
		return manifest
	}
	dir := &provider.DirLookup{Dir: m.Dir, Provider: p, Log: logger.Log}
	return atlas.ChannelLookupFunc(func(mat atlas.Material, role atlas.Role) (atlas.Handle, bool) {
		if h, ok := manifest.FindTexture(mat, role); ok {
			return h, true
		}
		return dir.FindTexture(mat, role)
	})
}

func cmdPlan(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: atlastool plan <manifest.yaml>")
		os.Exit(1)
	}

	m, err := LoadManifest(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fp := provider.NewFileProvider(cfg.Output.Dir)
	lookup := newLookup(m, fp)
	opts := cfg.AtlasOptions().WithDefaults()

	descs := atlas.Analyze(lookup, m.MaterialNames(), opts.Roles, opts.FallbackSize)
	items := make([]atlas.Item, len(descs))
	for i, d := range descs {
		items[i] = atlas.Item{ID: d.Index, Width: d.Width, Height: d.Height}
	}

	layout, err := atlas.Pack(items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Atlas %s: %dx%d, %d materials, efficiency %.1f%%\n",
		m.Name, layout.Width, layout.Height, len(descs), layout.Efficiency*100)
	fmt.Println()
	fmt.Printf("%-20s %-12s %-10s %s\n", "MATERIAL", "FOOTPRINT", "CHANNELS", "TILE")
	for _, d := range descs {
		place := layout.Placements[d.Index]
		fmt.Printf("%-20s %-12s %-10d (%d,%d)\n",
			d.Material.Name(),
			fmt.Sprintf("%dx%d", d.Width, d.Height),
			len(d.Textures),
			place.X, place.Y)
	}
}

func cmdBuild(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: atlastool build <manifest.yaml>")
		os.Exit(1)
	}

	m, err := LoadManifest(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fp := provider.NewFileProvider(cfg.Output.Dir)
	builder := atlas.NewBuilder(fp, newLookup(m, fp), cfg.AtlasOptions(), logger.Log)

	res, err := builder.Build(m.Name, m.MaterialNames(), nil)
	if err != nil {
		logger.Error("atlas build failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if res.Outcome == atlas.OutcomeSkipped {
		fmt.Printf("Skipped: %s\n", res.Reason)
		return
	}

	layoutPath := filepath.Join(cfg.Output.Dir,
		fmt.Sprintf("%s_%s_layout.yaml", cfg.Output.NamePrefix, m.Name))
	if err := writeLayoutFile(layoutPath, m, res); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing layout: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %dx%d atlas from %d materials (efficiency %.1f%%)\n",
		res.Layout.Width, res.Layout.Height, res.Materials, res.Layout.Efficiency*100)
	for _, role := range sortedRoles(res.Images) {
		fmt.Printf("  %-10s %s\n", role, fp.Path(res.Images[role]))
	}
	fmt.Printf("  %-10s %s\n", "layout", layoutPath)
}

func sortedRoles(images map[atlas.Role]atlas.Handle) []atlas.Role {
	roles := make([]atlas.Role, 0, len(images))
	for role := range images {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// layoutFile is the on-disk UV remap table a host-side script applies
// to mesh UVs.
type layoutFile struct {
	Name   string       `yaml:"name"`
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Tiles  []layoutTile `yaml:"tiles"`
}

type layoutTile struct {
	Material string     `yaml:"material"`
	X        int        `yaml:"x"`
	Y        int        `yaml:"y"`
	TileW    int        `yaml:"w"`
	TileH    int        `yaml:"h"`
	UVScale  [2]float32 `yaml:"uv_scale"`
	UVOffset [2]float32 `yaml:"uv_offset"`
}

func writeLayoutFile(path string, m *Manifest, res *atlas.Result) error {
	out := layoutFile{
		Name:   m.Name,
		Width:  res.Layout.Width,
		Height: res.Layout.Height,
	}
	for i, mat := range m.Materials {
		place, ok := res.Layout.Placements[i]
		if !ok {
			continue
		}
		scale, offset := place.UVTransform(res.Layout.Width, res.Layout.Height)
		out.Tiles = append(out.Tiles, layoutTile{
			Material: mat.Name,
			X:        place.X,
			Y:        place.Y,
			TileW:    place.Width,
			TileH:    place.Height,
			UVScale:  [2]float32{scale.X, scale.Y},
			UVOffset: [2]float32{offset.X, offset.Y},
		})
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
