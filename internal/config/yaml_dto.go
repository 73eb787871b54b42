package config

// YAMLConfig is the on-disk shape of the --config file. Pointer fields
// distinguish "unset" from an explicit zero.
type YAMLConfig struct {
	Directory struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
	} `yaml:"directory"`
	Server struct {
		Port *int `yaml:"port"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	ShowSampleOnEmpty *bool  `yaml:"show_sample_on_empty"`
	ChromePath        string `yaml:"chrome_path"`
}
