package config

import (
	"strings"

	"NFTMarketLedger/src/pkg/xzap"

	"github.com/spf13/viper"
)

type Config struct {
	Api         Api          `toml:"api" mapstructure:"api" json:"api"`
	ProjectCfg  *ProjectCfg  `toml:"project_cfg" mapstructure:"project_cfg" json:"project_cfg"`
	Log         xzap.LogConf `toml:"log" mapstructure:"log" json:"log"`
	DB          DB           `toml:"db" mapstructure:"db" json:"db"`
	Kv          *KvConfig    `toml:"kv" mapstructure:"kv" json:"kv"`
	Marketplace *Marketplace `toml:"marketplace" mapstructure:"marketplace" json:"marketplace"`
}

type Api struct {
	Port   string `toml:"port" mapstructure:"port" json:"port"`
	MaxNum int64  `toml:"max_num" mapstructure:"max_num" json:"max_num"`
}

type ProjectCfg struct {
	Name string `toml:"name" mapstructure:"name" json:"name"`
}

type DB struct {
	Dsn         string `toml:"dsn" mapstructure:"dsn" json:"dsn"`
	MaxIdleCons int    `toml:"max_idle_cons" mapstructure:"max_idle_cons" json:"max_idle_cons"`
	MaxOpenCons int    `toml:"max_open_cons" mapstructure:"max_open_cons" json:"max_open_cons"`
}

type KvConfig struct {
	Redis []*Redis `toml:"redis" mapstructure:"redis" json:"redis"`
}

type Redis struct {
	MasterName string `toml:"master_name" mapstructure:"master_name" json:"master_name"`
	Host       string `toml:"host" json:"host"`
	Type       string `toml:"type" json:"type"`
	Pass       string `toml:"pass" json:"pass"`
}

// Marketplace carries the ledger's own identity and the fixed trading fee,
// set once at deployment and immutable afterwards.
type Marketplace struct {
	Address       string `toml:"address" mapstructure:"address" json:"address"`
	TradingFee    string `toml:"trading_fee" mapstructure:"trading_fee" json:"trading_fee"`
	PermitVersion string `toml:"permit_version" mapstructure:"permit_version" json:"permit_version"`
}

// UnmarshalConfig parses the toml config file, with CNFT_-prefixed env
// variables taking precedence.
func UnmarshalConfig(configFilePath string) (*Config, error) {
	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("toml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("CNFT")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	config, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}
	return config, nil
}

func DefaultConfig() (*Config, error) {
	return &Config{
		Marketplace: &Marketplace{PermitVersion: "1"},
	}, nil
}
