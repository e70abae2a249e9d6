package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"

	"cpusched/internal/schedulers"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	SnapshotProcessLimit  int
}

var once sync.Once
var config *SchedulerConfig

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", schedulers.DefaultTimeQuantum)
		viper.SetDefault("scheduler.snapshot.process_limit", 5)
		if err := viper.ReadInConfig(); err != nil {
			log.Println("config file not found, using defaults:", err)
		}
		config = &SchedulerConfig{
			Port:                  viper.GetInt("port"),
			RoundRobinTimeQuantum: viper.GetInt("scheduler.round_robin.time_quantum"),
			SnapshotProcessLimit:  viper.GetInt("scheduler.snapshot.process_limit"),
		}

		// sanity clamps
		if config.Port <= 0 {
			config.Port = 9095
		}
		if config.RoundRobinTimeQuantum <= 0 {
			config.RoundRobinTimeQuantum = schedulers.DefaultTimeQuantum
		}
		if config.SnapshotProcessLimit <= 0 {
			config.SnapshotProcessLimit = 5
		}
	})

	return config
}
