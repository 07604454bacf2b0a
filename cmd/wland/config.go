package main

import "github.com/spf13/viper"

// Settings are the CLI defaults; flags override them.
type Settings struct {
	Format      string
	Domain      string
	RecordsFile string
}

// loadSettings reads settings from an explicit file, or from wland.yaml
// in the working directory when path is empty. A missing default file is
// not an error. WLAND_FORMAT, WLAND_DOMAIN, and WLAND_RECORDS_FILE
// override file values.
func loadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("format", "csv")
	v.SetDefault("domain", "")
	v.SetDefault("records_file", "")
	v.SetEnvPrefix("wland")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("wland")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	return &Settings{
		Format:      v.GetString("format"),
		Domain:      v.GetString("domain"),
		RecordsFile: v.GetString("records_file"),
	}, nil
}
