// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses the configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config JSON or YAML file path with configs
//	-central-url central server base URL
//	-username site username
//	-password site password
//	-site-uuid installation identifier
//	-schedule cron expression of the sync job
//	-request-timeout outbound sync request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
//	-log-file rotating log file path
//	-admin-token central admin token
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var configPath string
	var centralURL, username, password, siteUUID string
	var schedule string
	var requestTimeout time.Duration
	var logLevel, logFile string
	var adminToken string

	fs := flag.NewFlagSet("site-sync", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&centralURL, "central-url", "", "Central server base URL")
	fs.StringVar(&username, "username", "", "Site username")
	fs.StringVar(&password, "password", "", "Site password")
	fs.StringVar(&siteUUID, "site-uuid", "", "Installation identifier")
	fs.StringVar(&schedule, "schedule", "", "Sync schedule (cron expression)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Sync request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Rotating log file path")
	fs.StringVar(&adminToken, "admin-token", "", "Central admin token")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Sync: Sync{
			CentralURL:     centralURL,
			Username:       username,
			Password:       password,
			SiteUUID:       siteUUID,
			Schedule:       schedule,
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Central: Central{
			AdminToken: adminToken,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
