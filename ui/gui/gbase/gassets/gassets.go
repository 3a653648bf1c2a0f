package gassets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed assets/pieces/*.svg
var embeddedAssets embed.FS

var ErrNoAsset = errors.New("asset not found")

// Sprite formats in lookup order.
var extensions = []string{".png", ".svg"}

// Asset is the raw file behind an asset key.
type Asset struct {
	Key  string
	Ext  string // ".png" or ".svg"
	Data []byte
}

// ReadSprite resolves key to a file. With dir set only that directory is searched;
// otherwise the built-in pieces are used.
func ReadSprite(dir, key string) (Asset, error) {
	if key == "" {
		return Asset{}, fmt.Errorf("%w: empty key", ErrNoAsset)
	}
	if dir != "" {
		for _, ext := range extensions {
			data, err := os.ReadFile(filepath.Join(dir, key+ext))
			if err == nil {
				return Asset{Key: key, Ext: ext, Data: data}, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return Asset{}, err
			}
		}
		return Asset{}, fmt.Errorf("%w: %s in %s", ErrNoAsset, key, dir)
	}

	data, err := embeddedAssets.ReadFile("assets/pieces/" + key + ".svg")
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %s", ErrNoAsset, key)
	}
	return Asset{Key: key, Ext: ".svg", Data: data}, nil
}
