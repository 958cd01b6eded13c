package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Intel    IntelConfig    `mapstructure:"intelligence"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// UpstreamConfig 后端采集服务配置
type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RedisConfig Redis 配置（用于 trace 刷新通知的 Pub/Sub）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// IntelConfig 智能看板配置
type IntelConfig struct {
	HotItemsDefaultDays  int `mapstructure:"hot_items_default_days"`
	HotItemsDefaultLimit int `mapstructure:"hot_items_default_limit"`
	HotItemsQueryLimit   int `mapstructure:"hot_items_query_limit"` // 拉取台账明细的单次上限
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 兼容性处理：缺省值
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8090"
	}
	if cfg.Upstream.Timeout <= 0 {
		cfg.Upstream.Timeout = 10 * time.Second
	}
	if cfg.Intel.HotItemsDefaultDays <= 0 {
		cfg.Intel.HotItemsDefaultDays = 7
	}
	if cfg.Intel.HotItemsDefaultLimit <= 0 {
		cfg.Intel.HotItemsDefaultLimit = 10
	}
	if cfg.Intel.HotItemsQueryLimit <= 0 {
		cfg.Intel.HotItemsQueryLimit = 1000
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	return nil
}
