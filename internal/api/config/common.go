package config

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"database"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	MinIO   MinIOConfig   `mapstructure:"minio"`
	Elastic ElasticConfig `mapstructure:"elastic"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	Lookup  LookupConfig  `mapstructure:"lookup"`
	Price   PriceConfig   `mapstructure:"price"`
	Portal  PortalConfig  `mapstructure:"portal"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

type MinIOConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type ElasticConfig struct {
	Address      string `mapstructure:"address"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	ContentIndex string `mapstructure:"content_index"`
}

type KafkaConfig struct {
	Brokers          []string       `mapstructure:"brokers"`
	InteractionTopic string         `mapstructure:"interaction_topic"`
	GroupID          string         `mapstructure:"group_id"`
	Sasl             SaslConfig     `mapstructure:"sasl"`
	Consumer         ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

// LookupConfig layanan eksternal cuaca dan wilayah
type LookupConfig struct {
	WeatherBaseURL string `mapstructure:"weather_base_url"`
	WeatherApiKey  string `mapstructure:"weather_api_key"`
	WilayahBaseURL string `mapstructure:"wilayah_base_url"`
}

type PriceConfig struct {
	SourceURL string `mapstructure:"source_url"`
}

type PortalConfig struct {
	// BaseURL dipakai untuk menyusun tautan kanonik postingan
	BaseURL   string `mapstructure:"base_url"`
	JWTSecret string `mapstructure:"jwt_secret"`
}
