package main

type config struct {
	API              apiConfig              `yaml:"api"`
	ServiceDiscovery serviceDiscoveryConfig `yaml:"serviceDiscovery"`
	Jaeger           jaegerConfig           `yaml:"jaeger"`
	Database         databaseConfig         `yaml:"database"`
	Kafka            kafkaConfig            `yaml:"kafka"`
}

type apiConfig struct {
	Port int `yaml:"port"`
}

type serviceDiscoveryConfig struct {
	Consul consulConfig `yaml:"consul"`
}

type consulConfig struct {
	Address string `yaml:"address"`
}

type jaegerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type databaseConfig struct {
	// Driver selects the storage backend: "memory" or "mysql".
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type kafkaConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
	Topic   string `yaml:"topic"`
	GroupID string `yaml:"groupId"`
}
