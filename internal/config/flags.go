package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags out of args and returns the
// positional arguments that follow them.
//
// Flags:
//
//	-a service listen address in format [host]:[port]
//	-d database DSN
//	-c/-config JSON or YAML config file path
//	-token-sign-key, -token-issuer, -token-duration
//	-hash-key change-token hash key
//	-request-timeout request timeout (e.g. "30s")
//	-server task service base URL used by the client
//	-account, -login, -password, -scope sync account
//	-upload-only push local changes only
//	-interval periodic sync interval
//	-log-file, -log-level client log settings
//	-otlp-endpoint, -otlp-insecure telemetry collector
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var (
		serverAddress  NetAddress
		databaseDSN    string
		configPath     string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		hashKey        string
		requestTimeout time.Duration
		remoteAddress  string
		account        string
		login          string
		password       string
		scope          string
		uploadOnly     bool
		interval       time.Duration
		logFile        string
		logLevel       string
		otlpEndpoint   string
		otlpInsecure   bool
	)

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&hashKey, "hash-key", "", "Change-token hash key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&remoteAddress, "server", "", "Task service base URL")
	fs.StringVar(&account, "account", "", "Local account name")
	fs.StringVar(&login, "login", "", "Task service login")
	fs.StringVar(&password, "password", "", "Task service password")
	fs.StringVar(&scope, "scope", "", "Requested scope")
	fs.BoolVar(&uploadOnly, "upload-only", false, "Push local changes without fetching")
	fs.DurationVar(&interval, "interval", 0, "Periodic sync interval")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP gRPC collector host:port")
	fs.BoolVar(&otlpInsecure, "otlp-insecure", false, "Disable TLS for the collector")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{SyncInterval: interval},
		Sync: Sync{
			Account:    account,
			Login:      login,
			Password:   password,
			Scope:      scope,
			UploadOnly: uploadOnly,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		Telemetry: Telemetry{
			OTLPEndpoint: otlpEndpoint,
			Insecure:     otlpInsecure,
		},
		ConfigFilePath: configPath,
	}

	return cfg, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
