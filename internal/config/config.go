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
	Host      string    `koanf:"host"`
	Google    Google    `koanf:"google"`
	Database  Database  `koanf:"db"`
	Scheduler Scheduler `koanf:"scheduler"`
	RateLimit RateLimit `koanf:"ratelimit"`
}

type Google struct {
	ClientId     string `koanf:"clientid"`
	ClientSecret string `koanf:"clientsecret"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

// RateLimit configures the API-wide request limiter: a sustained rate in
// requests per second plus a burst allowance.
type RateLimit struct {
	Rps   float64 `koanf:"rps"`
	Burst int     `koanf:"burst"`
}

// Scheduler holds the business rules applied by the scheduling engine.
// Working days are time.Weekday values (Sunday = 0). The 30-minute slot step
// is fixed in the engine and intentionally not configurable.
type Scheduler struct {
	Timezone             string `koanf:"timezone"`
	WorkingHoursStart    int    `koanf:"workinghoursstart"`
	WorkingHoursEnd      int    `koanf:"workinghoursend"`
	WorkingDays          []int  `koanf:"workingdays"`
	ConfirmationRequired bool   `koanf:"confirmationrequired"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:3000",
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "slotsmith",
			Pass:   "",
			Name:   "slotsmith",
			Schema: "slotsmith",
		},
		Scheduler: Scheduler{
			Timezone:             "UTC",
			WorkingHoursStart:    9,
			WorkingHoursEnd:      18,
			WorkingDays:          []int{1, 2, 3, 4, 5},
			ConfirmationRequired: true,
		},
		RateLimit: RateLimit{
			Rps:   10,
			Burst: 20,
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
		Prefix: "SLOTSMITH_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "SLOTSMITH_")), "_", ".")
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
