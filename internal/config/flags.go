// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// parseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-registry registry backend (memory, sqlite)
//	-d registry DSN for the sqlite backend
//	-c/-config json file path with configs
//	-app-version version reported by GET /version
//	-access-header name of the header gating every route
//	-strict-ids enable check-and-retry package ID generation
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-stats-interval registry stats logging interval (e.g., "1m")
//	-log-level log level (debug, info, warn, error)
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var registryBackend string
	var registryDSN string
	var jsonConfigPath string
	var version string
	var accessHeader string
	var strictIDs bool
	var requestTimeout time.Duration
	var statsInterval time.Duration
	var logLevel string

	fs := flag.NewFlagSet("parcel-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&registryBackend, "registry", "", "Registry backend (memory, sqlite)")
	fs.StringVar(&registryDSN, "d", "", "Registry DSN (sqlite backend, in-memory only)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "app-version", "", "Version reported by the server")
	fs.StringVar(&accessHeader, "access-header", "", "Header required on every request")
	fs.BoolVar(&strictIDs, "strict-ids", false, "Retry package ID generation on collision")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&statsInterval, "stats-interval", 0, "Registry stats interval (e.g., 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version:      version,
			AccessHeader: accessHeader,
			StrictIDs:    strictIDs,
			LogLevel:     logLevel,
		},
		Storage: Storage{
			Registry: Registry{
				Backend: registryBackend,
				DSN:     registryDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			StatsInterval: statsInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string if neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
