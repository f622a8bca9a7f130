package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/scorta/pkg/inventory"
)

// Config exposes the settings the persistence layer and the state
// engine read once at startup. Grid dimensions are fixed for the life
// of the process; they are not user-editable at runtime.
type Config interface {
	BasePath() string
	GridBounds() inventory.Bounds
	UndoDepth() int
}

const (
	defaultPath = "~/.scorta.db"
	defaultRows = 5
	defaultCols = 10
)

func LoadConfig() (Config, error) {
	viper.SetDefault("path", defaultPath)
	viper.SetDefault("grid.rows", defaultRows)
	viper.SetDefault("grid.cols", defaultCols)
	viper.SetDefault("undo.depth", inventory.DefaultUndoDepth)
	viper.SetConfigName(".scorta") // .yaml is implicit
	viper.SetEnvPrefix("SCORTA")
	viper.AutomaticEnv()

	if override := os.Getenv("SCORTA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path: path,
		Rows: viper.GetInt("grid.rows"),
		Cols: viper.GetInt("grid.cols"),
		Undo: viper.GetInt("undo.depth"),
	}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
	Undo int    `json:"undo"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) GridBounds() inventory.Bounds {
	b := inventory.Bounds{Rows: f.Rows, Cols: f.Cols}
	if b.Rows <= 0 {
		b.Rows = defaultRows
	}
	if b.Cols <= 0 {
		b.Cols = defaultCols
	}
	return b
}

func (f *fileConfig) UndoDepth() int {
	if f.Undo <= 0 {
		return inventory.DefaultUndoDepth
	}
	return f.Undo
}
