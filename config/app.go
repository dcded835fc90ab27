package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// AccessExpire 访问令牌有效期（秒）
	AccessExpire int `json:"access_expire" yaml:"access_expire"`
}
