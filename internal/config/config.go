package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Supported document schemas
const (
	SchemaOpenAPI3 = "openapi3"
	SchemaSwagger2 = "swagger2"
)

// Config represents the application configuration
type Config struct {
	Project  ProjectConfig  `mapstructure:"project"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Document DocumentConfig `mapstructure:"document"`
	Output   OutputConfig   `mapstructure:"output"`
	Apifox   ApifoxSettings `mapstructure:"apifox"`
}

// ProjectConfig holds project-specific settings
type ProjectConfig struct {
	RootDir          string   `mapstructure:"root_dir"`          // Workspace root to analyze
	SourceRoot       string   `mapstructure:"source_root"`       // Conventional source root (e.g., "src/main/java")
	ControllerSuffix string   `mapstructure:"controller_suffix"` // Class name suffix marking controllers
	Encoding         []string `mapstructure:"encoding"`          // Encoding hints (e.g., ["utf-8", "gb18030", "euc-kr"])
}

// AnalysisConfig holds analysis behavior settings
type AnalysisConfig struct {
	ExcludeDirs []string `mapstructure:"exclude_dirs"` // Directories to exclude
	Workers     int      `mapstructure:"workers"`      // Files scanned in parallel
}

// DocumentConfig controls the emitted API document
type DocumentConfig struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Version     string `mapstructure:"version"`
	Schema      string `mapstructure:"schema"` // "openapi3" or "swagger2"
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`       // Output directory
	FileName string `mapstructure:"file_name"` // Output file name (without extension)
}

// ApifoxSettings locates the upload endpoint and the stored credentials
type ApifoxSettings struct {
	BaseURL    string `mapstructure:"base_url"`
	ConfigFile string `mapstructure:"config_file"` // relative to project.root_dir
	EnvFile    string `mapstructure:"env_file"`    // optional .env with APIFOX_* overrides
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetEnvPrefix("APIDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Workspace: .")
			fmt.Println("  Output:    ./output")
			fmt.Println("==========================================")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("project.root_dir", ".")
	v.SetDefault("project.source_root", "src/main/java")
	v.SetDefault("project.controller_suffix", "Controller")
	v.SetDefault("project.encoding", []string{"utf-8", "gb18030", "euc-kr"})

	v.SetDefault("analysis.exclude_dirs", []string{
		"**/test/**",
		"**/target/**",
		"**/build/**",
		"**/out/**",
		"**/.git/**",
		"**/.svn/**",
		"**/.idea/**",
		"**/node_modules/**",
	})
	v.SetDefault("analysis.workers", 4)

	v.SetDefault("document.title", "Spring API Documentation")
	v.SetDefault("document.description", "API documentation generated from Spring Controllers")
	v.SetDefault("document.version", "1.0.0")
	v.SetDefault("document.schema", SchemaOpenAPI3)

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "api-docs")

	v.SetDefault("apifox.base_url", "https://api.apifox.cn")
	v.SetDefault("apifox.config_file", ApifoxConfigFile)
	v.SetDefault("apifox.env_file", ".env")
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absRoot, err := filepath.Abs(c.Project.RootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve root_dir: %w", err)
	}
	c.Project.RootDir = absRoot

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// IsControllerFile checks if a file name follows the controller convention
func (c *Config) IsControllerFile(name string) bool {
	return matchPattern(filepath.Base(name), "*"+c.Project.ControllerSuffix+".java")
}

// ShouldExclude checks if a file path should be excluded based on exclude_dirs
func (c *Config) ShouldExclude(filePath string) bool {
	normalizedPath := filepath.ToSlash(filePath)

	for _, pattern := range c.Analysis.ExcludeDirs {
		if matchPathPattern(normalizedPath, pattern) {
			return true
		}
	}
	return false
}

// GetOutputPath returns the full path for an output file with the given extension
func (c *Config) GetOutputPath(ext string) string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+"."+strings.TrimPrefix(ext, "."))
}

// ApifoxConfigPath returns where the Apifox credentials are persisted
func (c *Config) ApifoxConfigPath() string {
	if filepath.IsAbs(c.Apifox.ConfigFile) {
		return c.Apifox.ConfigFile
	}
	return filepath.Join(c.Project.RootDir, c.Apifox.ConfigFile)
}

// ApifoxEnvPath returns the optional .env file location
func (c *Config) ApifoxEnvPath() string {
	if c.Apifox.EnvFile == "" || filepath.IsAbs(c.Apifox.EnvFile) {
		return c.Apifox.EnvFile
	}
	return filepath.Join(c.Project.RootDir, c.Apifox.EnvFile)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := os.Stat(c.Project.RootDir); os.IsNotExist(err) {
		return fmt.Errorf("root_dir does not exist: %s", c.Project.RootDir)
	}

	if c.Project.SourceRoot == "" {
		return fmt.Errorf("project.source_root cannot be empty")
	}

	if c.Project.ControllerSuffix == "" {
		return fmt.Errorf("project.controller_suffix cannot be empty")
	}

	if len(c.Project.Encoding) == 0 {
		return fmt.Errorf("project.encoding must contain at least one encoding")
	}

	if c.Analysis.Workers < 1 {
		return fmt.Errorf("analysis.workers must be at least 1, got %d", c.Analysis.Workers)
	}

	switch c.Document.Schema {
	case SchemaOpenAPI3, SchemaSwagger2:
	default:
		return fmt.Errorf("document.schema must be %q or %q, got %q", SchemaOpenAPI3, SchemaSwagger2, c.Document.Schema)
	}

	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	return nil
}

// matchPattern checks if a string matches a simple glob pattern
// Supports only '*' wildcard at the beginning or end
func matchPattern(str, pattern string) bool {
	if pattern == "*" {
		return true
	}

	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		middle := pattern[1 : len(pattern)-1]
		return strings.Contains(str, middle)
	} else if strings.HasPrefix(pattern, "*") {
		suffix := pattern[1:]
		return strings.HasSuffix(str, suffix)
	} else if strings.HasSuffix(pattern, "*") {
		prefix := pattern[:len(pattern)-1]
		return strings.HasPrefix(str, prefix)
	}

	return str == pattern
}

// matchPathPattern checks if a path matches a glob pattern
// Supports ** for recursive directory matching
func matchPathPattern(path, pattern string) bool {
	pattern = filepath.ToSlash(pattern)
	path = filepath.ToSlash(path)

	if strings.Contains(pattern, "**") {
		parts := strings.Split(pattern, "**")
		if len(parts) == 3 {
			// **/name/** - match a directory segment anywhere
			name := strings.Trim(parts[1], "/")
			return strings.Contains("/"+path+"/", "/"+name+"/")
		}
		if len(parts) == 2 {
			prefix := strings.Trim(parts[0], "/")
			suffix := strings.Trim(parts[1], "/")

			hasPrefix := true
			if prefix != "" {
				hasPrefix = strings.HasPrefix(path, prefix+"/") || strings.Contains(path, "/"+prefix+"/")
			}

			hasSuffix := true
			if suffix != "" {
				hasSuffix = strings.Contains(path, "/"+suffix+"/") ||
					strings.HasSuffix(path, "/"+suffix) ||
					strings.HasPrefix(path, suffix+"/")
			}

			return hasPrefix && hasSuffix
		}
	}

	cleanPattern := strings.Trim(pattern, "*")
	return strings.Contains(path, cleanPattern)
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Spring API Doc Configuration ===")
	fmt.Printf("Workspace Root:    %s\n", c.Project.RootDir)
	fmt.Printf("Source Root:       %s\n", c.Project.SourceRoot)
	fmt.Printf("Controller Suffix: %s\n", c.Project.ControllerSuffix)
	fmt.Printf("Encoding Hints:    %v\n", c.Project.Encoding)
	fmt.Printf("Exclude Dirs:      %v\n", c.Analysis.ExcludeDirs)
	fmt.Printf("Workers:           %d\n", c.Analysis.Workers)
	fmt.Printf("Document Schema:   %s\n", c.Document.Schema)
	fmt.Printf("Document Title:    %s\n", c.Document.Title)
	fmt.Printf("Output Directory:  %s\n", c.Output.Dir)
	fmt.Printf("Apifox Config:     %s\n", c.ApifoxConfigPath())
	fmt.Println("====================================")
}
