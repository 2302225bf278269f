package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the manifest file expected at the root of an asset directory.
const ManifestName = "manifest.yml"

//go:embed images/*
var embeddedImages embed.FS

// Image is a decoded image asset with its natural dimensions.
type Image struct {
	Key    string
	File   string
	Pixels image.Image
	Width  int
	Height int
}

// Manifest maps logical image keys to files in the asset directory.
// Several keys may point at the same file.
type Manifest struct {
	Images map[string]string `yaml:"images"`
}

// Catalog resolves logical keys to decoded images.
type Catalog struct {
	images map[string]Image
}

// Default loads the images bundled with the program.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embeddedImages, "images")
	if err != nil {
		return nil, fmt.Errorf("assets: open embedded images: %w", err)
	}
	return Load(sub)
}

// Load reads the manifest from fsys and decodes every referenced file once.
func Load(fsys fs.FS) (*Catalog, error) {
	manifest, err := readManifest(fsys)
	if err != nil {
		return nil, err
	}
	collector := &issueCollector{}
	decoded := map[string]image.Image{}
	catalog := &Catalog{images: make(map[string]Image, len(manifest.Images))}
	for _, rawKey := range sortedKeys(manifest.Images) {
		key := strings.TrimSpace(rawKey)
		file := strings.TrimSpace(manifest.Images[rawKey])
		if key == "" {
			collector.add("images", "empty key")
			continue
		}
		if _, dup := catalog.images[key]; dup {
			collector.add("images."+key, "duplicate key")
			continue
		}
		if file == "" {
			collector.add("images."+key, "file is required")
			continue
		}
		pixels, ok := decoded[file]
		if !ok {
			pixels, err = decodeFile(fsys, file)
			if err != nil {
				collector.add("images."+key, err.Error())
				continue
			}
			decoded[file] = pixels
		}
		bounds := pixels.Bounds()
		catalog.images[key] = Image{
			Key:    key,
			File:   file,
			Pixels: pixels,
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		}
	}
	if err := collector.result(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Lookup returns the image registered under key.
func (c *Catalog) Lookup(key string) (Image, bool) {
	if c == nil {
		return Image{}, false
	}
	img, ok := c.images[key]
	return img, ok
}

// Len returns the number of registered keys.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.images)
}

// Keys returns the registered keys in sorted order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.images))
	for key := range c.images {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func readManifest(fsys fs.FS) (Manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		return Manifest{}, fmt.Errorf("assets: read manifest: %w", err)
	}
	var manifest Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, nil
		}
		return Manifest{}, fmt.Errorf("assets: parse manifest: %w", err)
	}
	return manifest, nil
}

func decodeFile(fsys fs.FS, name string) (image.Image, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()
	pixels, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return pixels, nil
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
