package gamesense

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoAddress is returned when the engine address cannot be determined.
var ErrNoAddress = errors.New("gamesense: engine address not found")

// DefaultCorePropsPath returns where the engine advertises its address.
func DefaultCorePropsPath() string {
	root := os.Getenv("PROGRAMDATA")
	if root == "" {
		root = `C:\ProgramData`
	}
	return filepath.Join(root, "SteelSeries", "SteelSeries Engine 3", "coreProps.json")
}

type coreProps struct {
	Address string `json:"address"`
}

// DiscoverAddress reads the engine's host:port from the coreProps file at
// path, or from the default location when path is empty.
func DiscoverAddress(path string) (string, error) {
	if path == "" {
		path = DefaultCorePropsPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s does not exist", ErrNoAddress, path)
		}
		return "", fmt.Errorf("gamesense: cannot read %s: %w", path, err)
	}

	var props coreProps
	if err := json.Unmarshal(data, &props); err != nil {
		return "", fmt.Errorf("gamesense: cannot parse %s: %w", path, err)
	}

	addr := strings.TrimSpace(props.Address)
	if addr == "" {
		return "", fmt.Errorf("%w: %s has no address", ErrNoAddress, path)
	}
	return addr, nil
}
