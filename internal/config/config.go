// Package config resolves the EEG analysis configuration: which subjects and
// stimulation conditions to process and where their data lives.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// appFs is the filesystem loaders read from and validate against.
var appFs afero.Fs = afero.NewOsFs()

// Config is the resolved, validated configuration. It is read-only: every
// accessor returns a copy, so a *Config can be shared freely.
type Config struct {
	fs           afero.Fs
	rawPath      string
	subjects     []SubjectID
	conditions   []Condition
	subjectSel   Selection
	conditionSel Selection
}

// document is the on-disk shape of the configuration.
type document struct {
	RawPath    string         `mapstructure:"raw_path" yaml:"raw_path"`
	Subjects   []string       `mapstructure:"subjects" yaml:"subjects"`
	Conditions []string       `mapstructure:"conditions" yaml:"conditions"`
	Select     selectDocument `mapstructure:"select" yaml:"select"`
}

type selectDocument struct {
	Subject   string `mapstructure:"subject" yaml:"subject"`
	Condition string `mapstructure:"condition" yaml:"condition"`
}

// LoadConfigWithFile loads configuration from a specific file if provided,
// otherwise falls back to LoadConfig with the working directory.
func LoadConfigWithFile(workDir, configFile string) (*Config, error) {
	if configFile != "" {
		return LoadConfigFromPath(configFile)
	}
	return LoadConfig(workDir)
}

// LoadConfig loads eeg.yaml from dir, falling back to the global config
// directory. If neither exists, defaults and EEG_* environment variables
// are used.
func LoadConfig(dir string) (*Config, error) {
	v := newViper()

	v.SetConfigName(DefaultConfigName)
	v.SetConfigType(DefaultConfigType)
	v.AddConfigPath(dir)
	if globalPath, err := GlobalConfigPath(); err == nil {
		v.AddConfigPath(filepath.Dir(globalPath))
	}

	// Read config file (ignore not found errors)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("%w: read config: %w", ErrConfig, err)
		}
	}

	return build(v)
}

// LoadConfigFromPath loads configuration from a specific file path.
// A missing file yields defaults and environment overrides.
func LoadConfigFromPath(configPath string) (*Config, error) {
	v := newViper()

	if _, err := appFs.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return build(v)
		}
		return nil, fmt.Errorf("%w: stat config %s: %w", ErrConfig, configPath, err)
	}

	v.SetConfigFile(configPath)
	v.SetConfigType(DefaultConfigType)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: read config %s: %w", ErrConfig, configPath, err)
	}

	return build(v)
}

// newViper returns a viper instance with defaults and EEG_* env binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetFs(appFs)

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("raw_path", "")
	v.SetDefault("subjects", DefaultSubjects())
	v.SetDefault("conditions", DefaultConditions())
	v.SetDefault("select.subject", DefaultSubjectSelection)
	v.SetDefault("select.condition", DefaultConditionSelection)
}

func build(v *viper.Viper) (*Config, error) {
	var doc document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode config: %w", ErrConfig, err)
	}
	return newConfig(appFs, doc)
}

// newConfig validates doc and freezes it into a Config.
func newConfig(fs afero.Fs, doc document) (*Config, error) {
	root, err := resolveRoot(fs, doc.RawPath)
	if err != nil {
		return nil, err
	}

	subjects, err := parseSubjects(doc.Subjects)
	if err != nil {
		return nil, err
	}

	conditions, err := parseConditions(doc.Conditions)
	if err != nil {
		return nil, err
	}

	subjectSel := ParseSelection(doc.Select.Subject)
	if id, ok := subjectSel.Value(); ok {
		if !slices.Contains(subjects, SubjectID(id)) {
			return nil, &ValidationError{Field: "select.subject", Value: id, Reason: "not in subjects"}
		}
	}

	conditionSel := ParseSelection(doc.Select.Condition)
	if raw, ok := conditionSel.Value(); ok {
		c, err := ParseCondition(raw)
		if err != nil {
			return nil, &ValidationError{Field: "select.condition", Value: raw, Reason: "unknown condition", Err: err}
		}
		if !slices.Contains(conditions, c) {
			return nil, &ValidationError{Field: "select.condition", Value: raw, Reason: "not in conditions"}
		}
		conditionSel = One(string(c))
	}

	return &Config{
		fs:           fs,
		rawPath:      root,
		subjects:     subjects,
		conditions:   conditions,
		subjectSel:   subjectSel,
		conditionSel: conditionSel,
	}, nil
}

// resolveRoot makes raw absolute and checks it is a readable directory.
func resolveRoot(fs afero.Fs, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w (set raw_path or %s_RAW_PATH)", ErrRootNotSet, EnvPrefix)
	}

	root, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRootUnusable, raw, err)
	}

	info, err := fs.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrRootUnusable, root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrRootUnusable, root)
	}

	f, err := fs.Open(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRootUnusable, root, err)
	}
	_ = f.Close()

	return root, nil
}

func parseSubjects(raw []string) ([]SubjectID, error) {
	if len(raw) == 0 {
		return nil, &ValidationError{Field: "subjects", Reason: "must not be empty"}
	}

	seen := make(map[SubjectID]bool, len(raw))
	out := make([]SubjectID, 0, len(raw))
	for _, s := range raw {
		subject, err := ParseSubjectID(s)
		if err != nil {
			return nil, &ValidationError{Field: "subjects", Value: s, Reason: "malformed subject id", Err: err}
		}
		if seen[subject.ID] {
			return nil, &ValidationError{Field: "subjects", Value: s, Reason: "duplicate"}
		}
		seen[subject.ID] = true
		out = append(out, subject.ID)
	}

	slices.Sort(out)
	return out, nil
}

func parseConditions(raw []string) ([]Condition, error) {
	if len(raw) == 0 {
		return nil, &ValidationError{Field: "conditions", Reason: "must not be empty"}
	}

	seen := make(map[Condition]bool, len(raw))
	out := make([]Condition, 0, len(raw))
	for _, s := range raw {
		c, err := ParseCondition(s)
		if err != nil {
			return nil, &ValidationError{Field: "conditions", Value: s, Reason: "unknown condition", Err: err}
		}
		if seen[c] {
			return nil, &ValidationError{Field: "conditions", Value: s, Reason: "duplicate"}
		}
		seen[c] = true
		out = append(out, c)
	}

	slices.SortFunc(out, func(a, b Condition) int {
		return conditionRank(a) - conditionRank(b)
	})
	return out, nil
}

// RawPath returns the absolute root all data directories live under.
func (c *Config) RawPath() string {
	return c.rawPath
}

// SubjectsDir returns the subject metadata directory.
func (c *Config) SubjectsDir() string {
	return filepath.Join(c.rawPath, SubjectsSegment)
}

// EEGPath returns the raw EEG recordings directory.
func (c *Config) EEGPath() string {
	return filepath.Join(c.rawPath, EEGSegment)
}

// EyeTrackingPath returns the Eyelink recordings directory.
func (c *Config) EyeTrackingPath() string {
	return filepath.Join(c.rawPath, EyeTrackingSegment)
}

// GroupDir returns the group-analysis output directory.
func (c *Config) GroupDir() string {
	return filepath.Join(c.rawPath, GroupSegment)
}

// Subjects returns every configured subject, sorted.
func (c *Config) Subjects() []SubjectID {
	return slices.Clone(c.subjects)
}

// HasSubject reports whether id is in the subject set.
func (c *Config) HasSubject(id SubjectID) bool {
	_, found := slices.BinarySearch(c.subjects, id)
	return found
}

// Conditions returns every configured condition in canonical order.
func (c *Config) Conditions() []Condition {
	return slices.Clone(c.conditions)
}

// HasCondition reports whether cond is in the condition set.
func (c *Config) HasCondition(cond Condition) bool {
	return slices.Contains(c.conditions, cond)
}

// SubjectSelection returns the configured subject selection.
func (c *Config) SubjectSelection() Selection {
	return c.subjectSel
}

// ConditionSelection returns the configured condition selection.
func (c *Config) ConditionSelection() Selection {
	return c.conditionSel
}

// SelectedSubjects resolves the subject selection against the subject set.
func (c *Config) SelectedSubjects() []SubjectID {
	if id, ok := c.subjectSel.Value(); ok {
		return []SubjectID{SubjectID(id)}
	}
	return c.Subjects()
}

// SelectedConditions resolves the condition selection against the
// condition set.
func (c *Config) SelectedConditions() []Condition {
	if cond, ok := c.conditionSel.Value(); ok {
		return []Condition{Condition(cond)}
	}
	return c.Conditions()
}
