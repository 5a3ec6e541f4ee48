package config

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// fingerprintNamespace scopes configuration fingerprints.
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("eeg-analysis:config"))

// toDocument converts c back to its on-disk shape.
func (c *Config) toDocument() document {
	subjects := make([]string, len(c.subjects))
	for i, s := range c.subjects {
		subjects[i] = string(s)
	}
	conditions := make([]string, len(c.conditions))
	for i, cond := range c.conditions {
		conditions[i] = string(cond)
	}

	return document{
		RawPath:    c.rawPath,
		Subjects:   subjects,
		Conditions: conditions,
		Select: selectDocument{
			Subject:   c.subjectSel.String(),
			Condition: c.conditionSel.String(),
		},
	}
}

// WriteYAML writes the resolved configuration in the format the loaders read.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.toDocument()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

// Fingerprint returns a name-based UUID of the resolved configuration.
// Equal configurations always produce the same fingerprint.
func (c *Config) Fingerprint() uuid.UUID {
	data, err := yaml.Marshal(c.toDocument())
	if err != nil {
		// document holds only strings
		panic(fmt.Sprintf("marshal config document: %v", err))
	}
	return uuid.NewSHA1(fingerprintNamespace, data)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (c *Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	doc := c.toDocument()
	enc.AddString("raw_path", doc.RawPath)
	if err := enc.AddArray("subjects", stringArray(doc.Subjects)); err != nil {
		return err
	}
	if err := enc.AddArray("conditions", stringArray(doc.Conditions)); err != nil {
		return err
	}
	enc.AddString("select_subject", doc.Select.Subject)
	enc.AddString("select_condition", doc.Select.Condition)
	enc.AddString("fingerprint", c.Fingerprint().String())
	return nil
}

type stringArray []string

func (a stringArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, s := range a {
		enc.AppendString(s)
	}
	return nil
}
