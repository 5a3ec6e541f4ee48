package config

// Config file defaults
const (
	DefaultConfigName = "eeg"
	DefaultConfigType = "yaml"
	EnvPrefix         = "EEG"
	GlobalConfigDir   = "eeg-analysis"
)

// Data layout below the raw path
const (
	SubjectsSegment    = "subjects"
	EEGSegment         = "EEG_data"
	EyeTrackingSegment = "Eyelinkdata"
	GroupSegment       = "groupanalysis"
)

// Selection defaults
const (
	DefaultSubjectSelection   = SelectAllKeyword
	DefaultConditionSelection = string(ConditionOff)
)

// DefaultSubjects returns the study participants processed when no subject
// list is configured.
func DefaultSubjects() []string {
	return []string{
		"50_FHH_2403",
		"52_MKA_1308",
		"56_MAC_1108",
		"58_MSA_1402",
		"60_MHG_0703",
		"63_FBE_2310",
		"66_MKS_2008",
		"67_MVM_2905",
		"74_FHH_2906",
		"80_MGS_3006",
	}
}

// DefaultConditions returns the full stimulation vocabulary.
func DefaultConditions() []string {
	return []string{
		string(ConditionOff),
		string(Condition60),
		string(Condition130),
	}
}
