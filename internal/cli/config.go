package cli

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	UsersAddr   string `yaml:"users_addr"    mapstructure:"users_addr"`
	BlogAddr    string `yaml:"blog_addr"     mapstructure:"blog_addr"`
	WeatherAddr string `yaml:"weather_addr"  mapstructure:"weather_addr"`

	// DirectoryURL is where the gated services resolve identities.
	DirectoryURL  string        `yaml:"directory_url"  mapstructure:"directory_url"`
	LookupTimeout time.Duration `yaml:"lookup_timeout" mapstructure:"lookup_timeout"`

	// Checker selects the decision backend: directory | fga | static.
	Checker    string `yaml:"checker"       mapstructure:"checker"`
	FGAAPIURL  string `yaml:"fga_api_url"   mapstructure:"fga_api_url"`
	FGAStoreID string `yaml:"fga_store_id"  mapstructure:"fga_store_id"`
	FGAModelID string `yaml:"fga_model_id"  mapstructure:"fga_model_id"`

	EnableCORS bool `yaml:"enable_cors" mapstructure:"enable_cors"`
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
	}

	// Defaults
	v.SetDefault("users_addr", ":8086")
	v.SetDefault("blog_addr", ":8087")
	v.SetDefault("weather_addr", ":8088")
	v.SetDefault("directory_url", "http://localhost:8086")
	v.SetDefault("lookup_timeout", 5*time.Second)
	v.SetDefault("checker", "directory")
	v.SetDefault("enable_cors", true)

	// Env overrides: GATEKIT_USERS_ADDR, GATEKIT_DIRECTORY_URL, etc.
	v.SetEnvPrefix("GATEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Read file if it exists, otherwise return defaults without error
	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
