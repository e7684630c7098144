package queuelog

import (
	"os"

	"github.com/Station-Manager/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the Setup parameters in a form that can be loaded from YAML.
//
//	file_path: ./log.txt
//	colored: true
//	debug: false
type Config struct {
	// FilePath is the append-only log file; empty disables file output.
	FilePath string `yaml:"file_path" validate:"omitempty,logfile"`
	Colored  bool   `yaml:"colored"`
	Debug    bool   `yaml:"debug"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	const op errors.Op = "queuelog.LoadConfig"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigRead)
	}

	cfg := &Config{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigParse)
	}
	if err = validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
