package config

import (
	"errors"
	"flag"
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

// parseFlags parses the server command-line flags from args (normally
// os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "5m")
//	-yodeck-url Yodeck API base URL
//	-strategy upload strategy: reference or proxy
//	-concurrency number of parallel uploads per batch
//	-d journal database DSN
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("yodeck-sync", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout time.Duration
	var yodeckURL string
	var strategy string
	var concurrency int
	var databaseDSN string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 5m)")
	fs.StringVar(&yodeckURL, "yodeck-url", "", "Yodeck API base URL")
	fs.StringVar(&strategy, "strategy", "", "Upload strategy: reference or proxy")
	fs.IntVar(&concurrency, "concurrency", 0, "Number of parallel uploads per batch")
	fs.StringVar(&databaseDSN, "d", "", "Sync journal database DSN")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Yodeck: Yodeck{
			BaseURL:        yodeckURL,
			UploadStrategy: strategy,
		},
		Sync: Sync{
			Concurrency: concurrency,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
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
