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

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-vault remote vault API base URL
//	-user remote vault user
//	-token remote vault application token
//	-request-timeout vault request timeout (e.g. "30s")
//	-d local vault database DSN
//	-c/-config json file path with configs
//	-mode conflict mode (number or name)
//	-include-shared also update shared passwords
//	-batch-size concurrent writes per batch
//	-locale error message language
//	-f input file (also accepted as the first positional argument)
//	-t input type
//	-log-level log level
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var vaultAddress, vaultUser, vaultToken string
	var requestTimeout time.Duration
	var databaseDSN string
	var jsonConfigPath string
	var mode string
	var includeShared bool
	var batchSize int
	var locale string
	var inputFile, inputType string
	var logLevel string

	fs := flag.NewFlagSet("go-pass-import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&vaultAddress, "vault", "", "Vault API base URL")
	fs.StringVar(&vaultUser, "user", "", "Vault user")
	fs.StringVar(&vaultToken, "token", "", "Vault application token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Vault request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local vault database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&mode, "mode", "", "Conflict mode: 0..4 or skip-unchanged|skip-existing|overwrite|merge|create-new")
	fs.BoolVar(&includeShared, "include-shared", false, "Also update passwords that belong to a share")
	fs.IntVar(&batchSize, "batch-size", 0, "Concurrent vault writes per batch")
	fs.StringVar(&locale, "locale", "", "Language of error messages")
	fs.StringVar(&inputFile, "f", "", "Input file")
	fs.StringVar(&inputType, "t", "", "Input type")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if inputFile == "" && fs.NArg() > 0 {
		inputFile = fs.Arg(0)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    vaultAddress,
			User:           vaultUser,
			Token:          vaultToken,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Import: Import{
			Mode:          mode,
			IncludeShared: includeShared,
			BatchSize:     batchSize,
			Locale:        locale,
			InputFile:     inputFile,
			InputType:     inputType,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
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
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
