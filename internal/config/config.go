package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Server   Server   `koanf:"server"`
	Frontend Frontend `koanf:"frontend"`
	Database Database `koanf:"db"`
	Planning Planning `koanf:"planning"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Frontend struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
}

type Database struct {
	Path string `koanf:"path"`
}

// Planning carries the defaults used to pre-populate the projection
// planning form. They are suggestions only and never applied silently.
type Planning struct {
	DefaultFrequency     string `koanf:"defaultfrequency"`
	DefaultHorizonMonths int    `koanf:"defaulthorizonmonths"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Server: Server{
			Addr: ":8184",
		},
		Frontend: Frontend{
			Enabled: true,
			Dir:     "frontend",
		},
		Database: Database{
			Path: "./ahorro.db",
		},
		Planning: Planning{
			DefaultFrequency:     "BiWeekly",
			DefaultHorizonMonths: 1,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "AHORRO_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "AHORRO_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
