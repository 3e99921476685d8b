package docx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultDocumentPart is the main document part of a WordprocessingML package.
const DefaultDocumentPart = "word/document.xml"

// Config contains the options of the docxmodel tool and the File API.
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error)
	LogLevel string `mapstructure:"log_level"`
	// LogFile, when set, receives a rotated copy of every log line
	LogFile string `mapstructure:"log_file"`
	// DocumentPart is the name of the part decoded as the content tree
	DocumentPart string `mapstructure:"document_part"`
	// OwnText copies every text leaf out of the package buffer after loading
	OwnText bool `mapstructure:"own_text"`
	// Replacements are applied by "docxmodel replace" before any --set pair.
	// A list keeps the order and the case of the search strings.
	Replacements []Replacement `mapstructure:"replacements"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		DocumentPart: DefaultDocumentPart,
	}
}

// LoadConfig reads the configuration file at path (YAML, TOML or JSON by
// extension). An empty path searches for .docxmodel.yaml in the working
// directory. A missing file yields the defaults. DOCXMODEL_* environment
// variables override both.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("document_part", defaults.DocumentPart)
	v.SetDefault("own_text", defaults.OwnText)

	v.SetEnvPrefix("DOCXMODEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".docxmodel")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, NewDocumentError("load config", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, NewDocumentError("load config", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var issues []ValidationIssue

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		issues = append(issues, ValidationIssue{Field: "log_level", Message: "invalid log level: " + c.LogLevel})
	}

	if c.DocumentPart == "" {
		issues = append(issues, ValidationIssue{Field: "document_part", Message: "must not be empty"})
	} else if strings.HasPrefix(c.DocumentPart, "/") {
		issues = append(issues, ValidationIssue{Field: "document_part", Message: "must be relative to the package root"})
	}

	for i, r := range c.Replacements {
		if r.Old == "" {
			issues = append(issues, ValidationIssue{Field: fmt.Sprintf("replacements[%d].old", i), Message: ErrEmptyKey.Error()})
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
