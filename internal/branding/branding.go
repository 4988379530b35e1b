// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	ConfigFile     string `yaml:"config_file"`
	EnvPrefix      string `yaml:"env_prefix"`
	TemplateExt    string `yaml:"template_ext"`
	DefaultLibrary string `yaml:"default_library"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:        "typst-templatr",
			DisplayName:    "Typst Templatr",
			Description:    "A tool to manage Typst templates",
			ConfigFile:     ".typst-templatr.yaml",
			EnvPrefix:      "TYPST_TEMPLATR",
			TemplateExt:    ".typ",
			DefaultLibrary: "~/.typst-templates",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "typst-templatr").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ConfigFile returns the config file name placed directly under $HOME.
func ConfigFile() string { load(); return defaults.ConfigFile }

// EnvPrefix returns the environment variable prefix (e.g., "TYPST_TEMPLATR").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// TemplateExt returns the template file extension, including the dot.
func TemplateExt() string { load(); return defaults.TemplateExt }

// DefaultLibrary returns the library path suggested by init.
func DefaultLibrary() string { load(); return defaults.DefaultLibrary }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("templates_path") → "TYPST_TEMPLATR_TEMPLATES_PATH".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
