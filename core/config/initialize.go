package config

import (
	"log"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into the directory. Existing
// files are left untouched.
func Initialize(path string, logger *log.Logger) (*Configuration, error) {
	return initialize(afero.NewBasePathFs(afero.NewOsFs(), path), path, logger)
}

func initialize(fs afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	exists, err := afero.Exists(fs, ConfigurationName)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Printf("%s already exists, skipping", ConfigurationName)
	} else {
		logger.Printf("writing %s", ConfigurationName)
		if err := afero.WriteFile(fs, ConfigurationName, defaultConfigData, 0644); err != nil {
			return nil, err
		}
	}

	out := Default()
	out.dir = dir
	out.configFs = fs
	return out, nil
}
