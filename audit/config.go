package audit

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Sentinel errors returned by configuration handling.
var (
	ErrReadConfig    = errors.New("read config")
	ErrInvalidConfig = errors.New("invalid config")
)

// FolderType selects the header extractor for a folder of scripts.
type FolderType string

const (
	// FolderPython extracts leading # comment headers from .py files.
	FolderPython FolderType = "python"
	// FolderJava extracts the Header string constant from .java files.
	FolderJava FolderType = "java"
)

// Folder is one directory of scripts to scan.
type Folder struct {
	Path string     `yaml:"path"`
	Type FolderType `yaml:"type"`
}

// Flags holds CLI flag names for audit configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	ConfigFile string
	Inventory  string
	Report     string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds audit configuration. Fields tagged with yaml are loadable
// from a config file; the CLI flags registered by [Config.RegisterFlags]
// override the file.
//
// Create instances with [NewConfig] and call [Config.Resolve] to obtain the
// effective configuration.
type Config struct {
	Flags Flags `yaml:"-"`

	// ConfigFile is the YAML config path from the CLI ("" = none).
	ConfigFile string `yaml:"-"`

	// Inventory is the Excel workbook listing expected scripts.
	Inventory string `yaml:"inventory"`
	// Report is the Excel workbook to write ("" = skip writing).
	Report string `yaml:"report"`
	// Leader is the comment-leader character for comment headers.
	Leader string `yaml:"leader"`
	// Folders are the script directories to scan.
	Folders []Folder `yaml:"folders"`
	// Columns maps inventory column names to extracted field names.
	Columns map[string]string `yaml:"columns"`
	// JavaKeys maps lowercased Java header keys to field names.
	JavaKeys map[string]string `yaml:"java_keys"`
}

// NewConfig returns a new [Config] with default flag names and the default
// audit layout.
func NewConfig() *Config {
	f := Flags{
		ConfigFile: "config",
		Inventory:  "inventory",
		Report:     "report",
	}

	return f.NewConfig()
}

// defaults is the configuration used when no config file is given.
func defaults() *Config {
	return &Config{
		Inventory: "input_data.xlsx",
		Report:    "output_comparison.xlsx",
		Leader:    "#",
		Folders: []Folder{
			{Path: "scripts/python", Type: FolderPython},
			{Path: "scripts/java", Type: FolderJava},
		},
		Columns: map[string]string{
			"Excel_ID":        "ID",
			"Excel_Objective": "Objective",
			"Excel_Author":    "Author",
		},
		JavaKeys: map[string]string{
			"id":          "ID",
			"description": "Objective",
			"title":       "Filename",
			"author":      "Author",
		},
	}
}

// RegisterFlags adds audit flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.ConfigFile, c.Flags.ConfigFile, "c", "",
		"YAML config file path")
	flags.StringVar(&c.Inventory, c.Flags.Inventory, "",
		"inventory workbook path (overrides config file)")
	flags.StringVar(&c.Report, c.Flags.Report, "",
		"report workbook path (overrides config file)")
}

// RegisterCompletions registers shell completions for audit flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	for _, flag := range []string{c.Flags.ConfigFile, c.Flags.Inventory, c.Flags.Report} {
		err := cmd.MarkFlagFilename(flag)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// Resolve returns the effective configuration: built-in defaults, overlaid
// by the config file if one was given, overlaid by any flag values set on c.
func (c *Config) Resolve() (*Config, error) {
	eff := defaults()

	if c.ConfigFile != "" {
		data, err := os.ReadFile(c.ConfigFile) //nolint:gosec // Path from CLI flag is expected.
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}

		var file Config

		err = yaml.Unmarshal(data, &file)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}

		// Keys absent from the file keep their defaults.
		if file.Inventory != "" {
			eff.Inventory = file.Inventory
		}

		if file.Report != "" {
			eff.Report = file.Report
		}

		if file.Leader != "" {
			eff.Leader = file.Leader
		}

		if len(file.Folders) > 0 {
			eff.Folders = file.Folders
		}

		if file.Columns != nil {
			eff.Columns = file.Columns
		}

		if file.JavaKeys != nil {
			eff.JavaKeys = file.JavaKeys
		}
	}

	if c.Inventory != "" {
		eff.Inventory = c.Inventory
	}

	if c.Report != "" {
		eff.Report = c.Report
	}

	err := eff.validate()
	if err != nil {
		return nil, err
	}

	return eff, nil
}

func (c *Config) validate() error {
	if len(c.Leader) != 1 {
		return fmt.Errorf("%w: leader must be a single character, got %q",
			ErrInvalidConfig, c.Leader)
	}

	if c.Inventory == "" {
		return fmt.Errorf("%w: inventory path is empty", ErrInvalidConfig)
	}

	if len(c.Folders) == 0 {
		return fmt.Errorf("%w: no folders configured", ErrInvalidConfig)
	}

	for _, folder := range c.Folders {
		switch folder.Type {
		case FolderPython, FolderJava:
		default:
			return fmt.Errorf("%w: unknown folder type %q for %q",
				ErrInvalidConfig, folder.Type, folder.Path)
		}

		if folder.Path == "" {
			return fmt.Errorf("%w: folder with empty path", ErrInvalidConfig)
		}
	}

	return nil
}
