package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	DebugLevel int              `mapstructure:"debug_level"`
	Mysql      MysqlConfig      `mapstructure:"mysql"`
	Sqlite     SqliteConfig     `mapstructure:"sqlite"`
	LevelDB    string           `mapstructure:"leveldb"`
	Chain      ChainConfig      `mapstructure:"chain"`
	Explorer   ExplorerConfig   `mapstructure:"explorer"`
	HttpServer HttpServerConfig `mapstructure:"http_server"`
	Cron       CronConfig       `mapstructure:"cron"`
}

type MysqlConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	UserName string `mapstructure:"username"`
	PassWord string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

type SqliteConfig struct {
	Switch bool   `mapstructure:"switch"`
	Dir    string `mapstructure:"dir"`
}

type ChainConfig struct {
	Rpc          string `mapstructure:"rpc"`
	SwapContract string `mapstructure:"swap_contract"`
}

type ExplorerConfig struct {
	Switch    bool  `mapstructure:"switch"`
	FromBlock int64 `mapstructure:"from_block"`
	Interval  int   `mapstructure:"interval"`
}

type HttpServerConfig struct {
	Switch bool   `mapstructure:"switch"`
	Server string `mapstructure:"server"`
}

type CronConfig struct {
	Switch        bool   `mapstructure:"switch"`
	LiquiditySpec string `mapstructure:"liquidity_spec"`
}

// LoadConfig reads the json config at path (default ./config.json) into
// cfg. Missing file or malformed content is fatal, nothing can run
// without a config.
func LoadConfig(cfg *Config, path string) {
	if path == "" {
		path = "./config.json"
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("debug_level", 3)
	v.SetDefault("leveldb", "./leveldb")
	v.SetDefault("explorer.interval", 30)
	v.SetDefault("cron.liquidity_spec", "@every 5m")

	if err := v.ReadInConfig(); err != nil {
		panic(err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		panic(err)
	}
}
