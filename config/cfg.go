package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"storyroom/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	ContentConfig struct {
		Source        string             `yaml:"source" sanitize:"path_clean"`
		Extensions    []string           `yaml:"extensions" validate:"min=1,dive,required,startswith=."`
		ExcerptLength int                `yaml:"excerpt_length" validate:"min=10,max=1000"`
		Emotion       common.EmotionMode `yaml:"emotion" validate:"oneof=cyclic keywords"`
	}

	RoomConfig struct {
		ID          string `yaml:"id" validate:"required"`
		Name        string `yaml:"name" validate:"required"`
		NameOther   string `yaml:"name_other,omitempty"`
		Description string `yaml:"description,omitempty"`
		Order       int    `yaml:"order"`
		Audio       string `yaml:"audio,omitempty"`
	}

	AmbientConfig struct {
		DefaultSource string        `yaml:"default_source" validate:"required"`
		AssetsDir     string        `yaml:"assets_dir" sanitize:"path_clean"`
		SteadyVolume  float64       `yaml:"steady_volume" validate:"gt=0,lte=1"`
		SilenceVolume float64       `yaml:"silence_volume" validate:"gte=0,ltefield=SteadyVolume"`
		Crossfade     time.Duration `yaml:"crossfade" validate:"gt=0"`
		FirstPlay     time.Duration `yaml:"first_play" validate:"gt=0"`
		Mute          time.Duration `yaml:"mute" validate:"gt=0"`
		SilenceFade   time.Duration `yaml:"silence_fade" validate:"gt=0"`
		FrameInterval time.Duration `yaml:"frame_interval" validate:"gt=0"`
		SampleRate    int           `yaml:"sample_rate" validate:"oneof=22050 44100 48000"`
	}

	ServerConfig struct {
		Listen          string        `yaml:"listen" validate:"required"`
		Mode            string        `yaml:"mode" validate:"oneof=debug release test"`
		MetricsPath     string        `yaml:"metrics_path" validate:"omitempty,startswith=/"`
		DefaultLanguage string        `yaml:"default_language" validate:"oneof=en hi"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
		AllowOrigins    []string      `yaml:"allow_origins,omitempty" validate:"dive,required"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Content   ContentConfig  `yaml:"content"`
		Rooms     []RoomConfig   `yaml:"rooms" validate:"unique=ID,dive"`
		Ambient   AmbientConfig  `yaml:"ambient"`
		Server    ServerConfig   `yaml:"server"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// Only fields we defined are accepted, so yaml.Unmarshal would not do
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration expands embedded template to get defaults, superimposes
// values from the file at the given path (if any) and validates the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare expands configuration template and returns it.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
