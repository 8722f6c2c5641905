package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/elysium/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool `json:"debug"`
	Fullscreen bool `json:"fullscreen"`
}

// settingsStore is the subset of *gdata.Manager used for settings.
type settingsStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var gdataManager settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Ledger.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings stores the live configuration.
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		Debug:      cfg.Debug.Enabled,
		Fullscreen: ebiten.IsFullscreen(),
	})
}

// ApplySavedSettingsGlobal applies settings during startup before scenes
// are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Enabled = saved.Debug
	if saved.Fullscreen {
		ebiten.SetFullscreen(true)
	}
}

// ApplyStartupSettings loads the saved settings and then applies the
// ELYSIUM_* overrides on top, so the environment wins over the save file.
func ApplyStartupSettings() {
	envErr := cfg.ApplyEnv()
	if envErr != nil {
		log.Printf("Warning: Ignoring environment overrides: %v", envErr)
	}
	if cfg.Debug.SkipPersistence {
		return
	}
	if gdataManager == nil {
		if err := InitPersistence(); err != nil {
			return
		}
	}
	saved, err := LoadSettings()
	if err != nil || saved == nil {
		return
	}
	ApplySavedSettingsGlobal(saved)
	// Saved values replaced the environment's; put them back.
	if envErr == nil {
		_ = cfg.ApplyEnv()
	}
}

// SavedGameProgress records the level the player reached.
type SavedGameProgress struct {
	Level string `json:"level"`
}

// LoadGameProgress returns nil when nothing has been saved yet.
func LoadGameProgress() (*SavedGameProgress, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load game progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedGameProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}

	return &progress, nil
}

// SaveGameProgress stores the level to resume from.
func SaveGameProgress(level string) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(&SavedGameProgress{Level: level})
	if err != nil {
		log.Printf("Warning: Could not serialize game progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save game progress: %v", err)
		return err
	}
	return nil
}
