package docx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "word/document.xml", config.DocumentPart)
	assert.Empty(t, config.LogFile)
	assert.False(t, config.OwnText)
	assert.NoError(t, config.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, config *Config)
	}{
		{
			name: "yaml",
			file: "docxmodel.yaml",
			content: `log_level: debug
own_text: true
replacements:
  - old: "{{Name}}"
    new: Jane
  - old: "{{Date}}"
    new: 1 May
`,
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, "debug", config.LogLevel)
				assert.True(t, config.OwnText)
				assert.Equal(t, DefaultDocumentPart, config.DocumentPart)
				assert.Equal(t, []Replacement{
					{Old: "{{Name}}", New: "Jane"},
					{Old: "{{Date}}", New: "1 May"},
				}, config.Replacements)
			},
		},
		{
			name: "toml",
			file: "docxmodel.toml",
			content: `log_level = "warn"
document_part = "word/document2.xml"
`,
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, "warn", config.LogLevel)
				assert.Equal(t, "word/document2.xml", config.DocumentPart)
			},
		},
		{
			name:    "json",
			file:    "docxmodel.json",
			content: `{"log_file": "/tmp/docxmodel.log"}`,
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, "info", config.LogLevel)
				assert.Equal(t, "/tmp/docxmodel.log", config.LogFile)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)
			tt.check(t, config)
		})
	}
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("DOCXMODEL_LOG_LEVEL", "error")
	t.Setenv("DOCXMODEL_OWN_TEXT", "true")

	config, err := LoadConfig(writeConfig(t, "c.yaml", "log_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "error", config.LogLevel)
	assert.True(t, config.OwnText)
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().DocumentPart, config.DocumentPart)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, IsDocumentError(err))

	_, err = LoadConfig(writeConfig(t, "bad.yaml", "log_level: [\n"))
	assert.True(t, IsDocumentError(err))

	_, err = LoadConfig(writeConfig(t, "invalid.yaml", "log_level: loud\n"))
	assert.True(t, IsValidationError(err))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		fields []string
	}{
		{"valid", func(*Config) {}, nil},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, []string{"log_level"}},
		{"empty part", func(c *Config) { c.DocumentPart = "" }, []string{"document_part"}},
		{"absolute part", func(c *Config) { c.DocumentPart = "/word/document.xml" }, []string{"document_part"}},
		{
			name: "several issues",
			modify: func(c *Config) {
				c.LogLevel = ""
				c.Replacements = []Replacement{{Old: "a"}, {Old: ""}}
			},
			fields: []string{"log_level", "replacements[1].old"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)
			err := config.Validate()
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			var fields []string
			for _, issue := range ve.Issues {
				fields = append(fields, issue.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}
