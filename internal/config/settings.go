package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys double as flag names and environment variable stems: the
// num-files flag is overridable through CODEFEED_NUM_FILES, and so on.
const (
	// SettingKeyReport toggles the summary report after the content blocks.
	SettingKeyReport = "report"
	// SettingKeyFileSize bounds the byte size of a single admitted file.
	SettingKeyFileSize = "file-size"
	// SettingKeyTotalSize bounds the cumulative byte size across admitted files.
	SettingKeyTotalSize = "total-size"
	// SettingKeyNumFiles bounds how many files may be admitted.
	SettingKeyNumFiles = "num-files"
	// SettingKeyCopy additionally copies the rendered output to the clipboard.
	SettingKeyCopy = "copy"
	// SettingKeyModel selects the tokenizer model used by the report.
	SettingKeyModel = "model"
)

// Default ceilings applied when neither flag nor environment supplies a value.
const (
	// DefaultMaxFileSizeBytes is the per-file ceiling (1 MiB).
	DefaultMaxFileSizeBytes int64 = 1 << 20
	// DefaultMaxTotalSizeBytes is the cumulative ceiling (100 MiB).
	DefaultMaxTotalSizeBytes int64 = 100 << 20
	// DefaultMaxFileCount is the admitted-file count ceiling.
	DefaultMaxFileCount = 10000
)

const environmentVariablePrefix = "CODEFEED"

// Settings carries every knob a scan run honors.
type Settings struct {
	ReportRequested   bool
	CopyToClipboard   bool
	TokenizerModel    string
	MaxFileCount      int
	MaxTotalSizeBytes int64
	MaxFileSizeBytes  int64
}

// ResolveSettings layers the parsed flag set over CODEFEED_* environment
// variables and the built-in defaults. Precedence: explicit flag, then
// environment, then default.
func ResolveSettings(flagSet *pflag.FlagSet) (Settings, error) {
	viperInstance := viper.New()
	viperInstance.SetEnvPrefix(environmentVariablePrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()
	if bindError := viperInstance.BindPFlags(flagSet); bindError != nil {
		return Settings{}, bindError
	}
	return Settings{
		ReportRequested:   viperInstance.GetBool(SettingKeyReport),
		CopyToClipboard:   viperInstance.GetBool(SettingKeyCopy),
		TokenizerModel:    viperInstance.GetString(SettingKeyModel),
		MaxFileCount:      viperInstance.GetInt(SettingKeyNumFiles),
		MaxTotalSizeBytes: viperInstance.GetInt64(SettingKeyTotalSize),
		MaxFileSizeBytes:  viperInstance.GetInt64(SettingKeyFileSize),
	}, nil
}
