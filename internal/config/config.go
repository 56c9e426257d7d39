package config

type Config struct {
	Log        LogConfig    `mapstructure:"log"`
	Input      InputConfig  `mapstructure:"input"`
	Output     OutputConfig `mapstructure:"output"`
	ConfigPath string       `mapstructure:"-"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type InputConfig struct {
	Delimiter string `mapstructure:"delimiter"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

func NewDefault() *Config {
	return &Config{
		Log:    LogConfig{Level: "error", Format: "json"},
		Input:  InputConfig{Delimiter: ","},
		Output: OutputConfig{Format: "csv"},
	}
}
