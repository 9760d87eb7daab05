package config

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"texteditor/editor"
)

//go:embed config.json
var defaults embed.FS

const confName = "config.json"

// Config loads the editor display configuration from the user's config
// directory, writing the embedded default on first run and hot-reloading
// on file changes.
type Config struct {
	log     *log.Logger
	watcher *fsnotify.Watcher

	mu     sync.RWMutex
	editor editor.Config

	dir  string
	file string
}

func NewConfig(logger *log.Logger) *Config {
	return &Config{log: logger, editor: editor.DefaultConfig()}
}

// Editor returns the current editor configuration snapshot.
func (cfg *Config) Editor() editor.Config {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.editor
}

func (cfg *Config) Init() error {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		cfg.dir = filepath.Join(xdg, "storie")
	} else {
		cfg.dir = filepath.Join(os.Getenv("HOME"), ".storie")
	}
	cfg.file = filepath.Join(cfg.dir, confName)

	if err := cfg.writeConfigIfMissing(); err != nil {
		return err
	}
	if err := cfg.readConfigIntoMemory(); err != nil {
		return err
	}
	return cfg.watchForChanges()
}

func (cfg *Config) writeConfigIfMissing() error {
	if _, err := os.Stat(cfg.file); err == nil {
		return nil
	}
	content, err := fs.ReadFile(defaults, confName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.dir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(cfg.file, content, 0664); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	return nil
}

func (cfg *Config) readConfigIntoMemory() error {
	content, err := os.ReadFile(cfg.file)
	if err != nil {
		return err
	}
	next := editor.DefaultConfig()
	if err := json.Unmarshal(content, &next); err != nil {
		return err
	}
	cfg.mu.Lock()
	cfg.editor = next
	cfg.mu.Unlock()
	return nil
}

func (cfg *Config) watchForChanges() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	cfg.watcher = watcher
	if err := watcher.Add(cfg.dir); err != nil {
		watcher.Close()
		cfg.watcher = nil
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) && event.Name == cfg.file {
					if err := cfg.readConfigIntoMemory(); err != nil {
						cfg.log.Printf("config reload failed: %v", err)
					} else {
						cfg.log.Printf("config reloaded from %s", cfg.file)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				cfg.log.Printf("config watcher: %v", err)
			}
		}
	}()
	return nil
}

func (cfg *Config) Cleanup() {
	if cfg.watcher != nil {
		cfg.watcher.Close()
	}
}
