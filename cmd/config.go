package main

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"sort"
	"strings"
)

type serviceConfigService struct {
	Port     string `json:"port,omitempty"`
	RuleFile string `json:"rule_file,omitempty"`
}

type serviceConfigFolio struct {
	URL         string `json:"url,omitempty"`
	Tenant      string `json:"tenant,omitempty"`
	Username    string `json:"username,omitempty"`
	Password    string `json:"password,omitempty"`
	ConnTimeout string `json:"conn_timeout,omitempty"`
	ReadTimeout string `json:"read_timeout,omitempty"`
}

type serviceConfig struct {
	Service serviceConfigService `json:"service,omitempty"`
	Folio   serviceConfigFolio   `json:"folio,omitempty"`
}

func getSortedJSONEnvVars() []string {
	var keys []string

	for _, keyval := range os.Environ() {
		key := strings.Split(keyval, "=")[0]
		if strings.HasPrefix(key, "FOLIO_SPINE_WS_JSON_") {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys
}

func loadConfig() *serviceConfig {
	cfg := serviceConfig{}

	// json configs

	envs := getSortedJSONEnvVars()

	valid := true

	for _, env := range envs {
		log.Printf("[CONFIG] loading %s ...", env)
		if val := os.Getenv(env); val != "" {
			dec := json.NewDecoder(bytes.NewReader([]byte(val)))
			dec.DisallowUnknownFields()

			if err := dec.Decode(&cfg); err != nil {
				log.Printf("error decoding %s: %s", env, err.Error())
				valid = false
			}
		}
	}

	if valid == false {
		log.Printf("exiting due to json decode error(s) above")
		os.Exit(1)
	}

	// optional convenience overrides to simplify terraform config
	if url := os.Getenv("FOLIO_SPINE_WS_FOLIO_URL"); url != "" {
		cfg.Folio.URL = url
	}

	if tenant := os.Getenv("FOLIO_SPINE_WS_FOLIO_TENANT"); tenant != "" {
		cfg.Folio.Tenant = tenant
	}

	if user := os.Getenv("FOLIO_SPINE_WS_FOLIO_USERNAME"); user != "" {
		cfg.Folio.Username = user
	}

	if pass := os.Getenv("FOLIO_SPINE_WS_FOLIO_PASSWORD"); pass != "" {
		cfg.Folio.Password = pass
	}

	// log the composite config, minus credentials

	logged := cfg
	logged.Folio.Username = "REDACTED"
	logged.Folio.Password = "REDACTED"

	bytes, err := json.Marshal(logged)
	if err != nil {
		log.Printf("error encoding service config json: %s", err.Error())
		os.Exit(1)
	}

	log.Printf("[CONFIG] composite json:")
	log.Printf("\n%s", string(bytes))

	return &cfg
}
