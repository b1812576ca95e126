package main

import (
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// git commit used for this build; supplied at compile time
var gitCommit string

type serviceVersion struct {
	BuildVersion string `json:"build,omitempty"`
	GoVersion    string `json:"go_version,omitempty"`
	GitCommit    string `json:"git_commit,omitempty"`
}

type serviceFolio struct {
	client   *http.Client
	url      string
	tenant   string
	username string
	password string
}

type serviceContext struct {
	randomSource *rand.Rand
	config       *serviceConfig
	version      serviceVersion
	folio        serviceFolio
}

func timeoutWithMinimum(str string, min int) int {
	val, err := strconv.Atoi(str)

	// fallback for invalid or nonsensical timeout values
	if err != nil || val < min {
		val = min
	}

	return val
}

func (svc *serviceContext) initVersion() {
	buildVersion := "unknown"
	files, _ := filepath.Glob("buildtag.*")
	if len(files) == 1 {
		buildVersion = strings.Replace(files[0], "buildtag.", "", 1)
	}

	svc.version = serviceVersion{
		BuildVersion: buildVersion,
		GoVersion:    fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
		GitCommit:    gitCommit,
	}

	log.Printf("[SERVICE] version.BuildVersion = [%s]", svc.version.BuildVersion)
	log.Printf("[SERVICE] version.GoVersion    = [%s]", svc.version.GoVersion)
	log.Printf("[SERVICE] version.GitCommit    = [%s]", svc.version.GitCommit)
}

func (svc *serviceContext) initFolio() {
	connTimeout := timeoutWithMinimum(svc.config.Folio.ConnTimeout, 5)
	readTimeout := timeoutWithMinimum(svc.config.Folio.ReadTimeout, 5)

	folioClient := &http.Client{
		Timeout: time.Duration(readTimeout) * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   time.Duration(connTimeout) * time.Second,
				KeepAlive: 60 * time.Second,
			}).DialContext,
			MaxIdleConns:        100, // we are hitting one okapi gateway, so
			MaxIdleConnsPerHost: 100, // these two values can be the same
			IdleConnTimeout:     90 * time.Second,
		},
	}

	svc.folio = serviceFolio{
		client:   folioClient,
		url:      strings.TrimRight(svc.config.Folio.URL, "/"),
		tenant:   svc.config.Folio.Tenant,
		username: svc.config.Folio.Username,
		password: svc.config.Folio.Password,
	}

	log.Printf("[SERVICE] folio.url            = [%s]", svc.folio.url)
	log.Printf("[SERVICE] folio.tenant         = [%s]", svc.folio.tenant)
}

func (svc *serviceContext) validateConfig() {
	// ensure the existence of required config values

	invalid := false

	requireValue := func(value string, label string) {
		if value == "" {
			log.Printf("[VALIDATE] missing %s", label)
			invalid = true
		}
	}

	requireValue(svc.config.Service.Port, "service port")
	requireValue(svc.config.Service.RuleFile, "service rule file")
	requireValue(svc.config.Folio.URL, "folio url")
	requireValue(svc.config.Folio.Tenant, "folio tenant")
	requireValue(svc.config.Folio.Username, "folio username")
	requireValue(svc.config.Folio.Password, "folio password")

	if invalid == true {
		log.Printf("[VALIDATE] exiting due to missing field value(s) above")
		os.Exit(1)
	}
}

func initializeService(cfg *serviceConfig) *serviceContext {
	svc := serviceContext{}

	svc.config = cfg
	svc.randomSource = rand.New(rand.NewSource(time.Now().UnixNano()))

	svc.initVersion()
	svc.initFolio()

	svc.validateConfig()

	return &svc
}
