package config

type Config struct {
	Addr            int    `mapstructure:"ADDR"`
	Env             string `mapstructure:"ENV"`
	Data_dir        string `mapstructure:"DATA_DIR"`
	Storage_backend string `mapstructure:"STORAGE_BACKEND"`
	Jwt_secret      string `mapstructure:"JWT_SECRET"`
	Login_delay_ms  int    `mapstructure:"LOGIN_DELAY_MS"`
}
