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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d local document store DSN
//	-meta-dsn postgres checkpoint store DSN
//	-c/-config json file path with configs
//	-namespace checkpoint key namespace
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-endpoint-url remote replication endpoint base URL
//	-collection replicated collection name
//	-endpoint-token bearer token for the remote endpoint
//	-endpoint-timeout outbound request timeout
//	-batch-size change-feed window size
//	-sync-interval background sync round interval
//	-sync-revisions enable latest-winner revision refresh
//	-last-pulled-rev-field body field holding the last pulled revision
//	-pk logical primary key field name
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var metaDSN string
	var jsonConfigPath string
	var namespace string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var endpointURL string
	var collection string
	var endpointToken string
	var endpointTimeout time.Duration
	var batchSize int
	var syncInterval time.Duration
	var syncRevisions bool
	var lastPulledRevField string
	var primaryKey string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local document store DSN")
	flag.StringVar(&metaDSN, "meta-dsn", "", "Postgres checkpoint store DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&namespace, "namespace", "", "Checkpoint key namespace")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.StringVar(&endpointURL, "endpoint-url", "", "Remote replication endpoint base URL")
	flag.StringVar(&collection, "collection", "", "Replicated collection name")
	flag.StringVar(&endpointToken, "endpoint-token", "", "Bearer token for the remote endpoint")
	flag.DurationVar(&endpointTimeout, "endpoint-timeout", 0, "Outbound request timeout")
	flag.IntVar(&batchSize, "batch-size", 0, "Change-feed window size")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync round interval")
	flag.BoolVar(&syncRevisions, "sync-revisions", false, "Enable latest-winner revision refresh")
	flag.StringVar(&lastPulledRevField, "last-pulled-rev-field", "", "Body field holding the last pulled revision")
	flag.StringVar(&primaryKey, "pk", "", "Logical primary key field name")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Namespace:     namespace,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Meta: Meta{
				DSN: metaDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Endpoint: Endpoint{
			URL:            endpointURL,
			Collection:     collection,
			Token:          endpointToken,
			RequestTimeout: endpointTimeout,
		},
		Sync: Sync{
			BatchSize:          batchSize,
			Interval:           syncInterval,
			SyncRevisions:      syncRevisions,
			LastPulledRevField: lastPulledRevField,
			PrimaryKey:         primaryKey,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
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
