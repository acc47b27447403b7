// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2013-2016 The btcsuite developers

package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Qitmeer/zmqnotify/config"
	"github.com/Qitmeer/zmqnotify/database"
	"github.com/Qitmeer/zmqnotify/log"
	"github.com/Qitmeer/zmqnotify/metrics"
	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename    = "qitmeer.conf"
	defaultDataDirname       = "data"
	defaultLogLevel          = "info"
	defaultDebugPrintOrigins = false
	defaultLogDirname        = "logs"
	defaultLogFilename       = "qitmeer.log"
	defaultDbType            = "leveldb"
)

var (
	defaultHomeDir    = btcutil.AppDataDir("qitmeerd", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

func hwmDefaults(cfg *config.Config) {
	for _, hwm := range []*int{
		&cfg.Zmqpubhashblockhwm, &cfg.Zmqpubhashtxhwm, &cfg.Zmqpubrawblockhwm,
		&cfg.Zmqpubrawtxhwm, &cfg.Zmqpubsequencehwm, &cfg.Zmqpubmempooladdedhwm,
		&cfg.Zmqpubmempoolremovedhwm, &cfg.Zmqpubmempoolreplacedhwm,
		&cfg.Zmqpubmempoolconfirmedhwm, &cfg.Zmqpubchaintipchangedhwm,
		&cfg.Zmqpubchainconnectedhwm, &cfg.Zmqpubchainheaderaddedhwm,
	} {
		*hwm = config.DefaultZMQHighWaterMark
	}
}

// LoadConfig initializes and parses the config using a config file and the
// command line options in args.
func LoadConfig(args []string) (*config.Config, []string, error) {
	funcName := "loadConfig"

	// Default config.
	cfg := config.Config{
		HomeDir:           defaultHomeDir,
		ConfigFile:        defaultConfigFile,
		DebugLevel:        defaultLogLevel,
		DebugPrintOrigins: defaultDebugPrintOrigins,
		DataDir:           defaultDataDir,
		LogDir:            defaultLogDir,
		DbType:            defaultDbType,
	}
	hwmDefaults(&cfg)

	// Pre-parse the command line options to see if an alternative config
	// file or home directory was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	// Update the home directory if specified. Since the home directory is
	// updated, other variables need to be updated to reflect the new changes.
	if preCfg.HomeDir != defaultHomeDir {
		cfg.HomeDir, _ = filepath.Abs(preCfg.HomeDir)

		if preCfg.ConfigFile == defaultConfigFile {
			preCfg.ConfigFile = filepath.Join(cfg.HomeDir, defaultConfigFilename)
		}
		cfg.ConfigFile = preCfg.ConfigFile
		if preCfg.DataDir == defaultDataDir {
			cfg.DataDir = filepath.Join(cfg.HomeDir, defaultDataDirname)
		} else {
			cfg.DataDir = preCfg.DataDir
		}
		if preCfg.LogDir == defaultLogDir {
			cfg.LogDir = filepath.Join(cfg.HomeDir, defaultLogDirname)
		} else {
			cfg.LogDir = preCfg.LogDir
		}
	}

	// Load additional config from file.
	var configFileError error
	parser := newConfigParser(&cfg, flags.Default&^flags.PrintErrors)
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return nil, nil, fmt.Errorf("%s: error parsing config file: %v", funcName, err)
		}
		configFileError = err
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	// Create the home directory if it doesn't already exist.
	err = os.MkdirAll(cfg.HomeDir, 0700)
	if err != nil {
		// Show a nicer error message if it's because a symlink is
		// linked to a directory that does not exist (probably because
		// it's not mounted).
		if e, ok := err.(*os.PathError); ok && os.IsExist(err) {
			if link, lerr := os.Readlink(e.Path); lerr == nil {
				str := "is symlink %s -> %s mounted?"
				err = fmt.Errorf(str, e.Path, link)
			}
		}
		return nil, nil, fmt.Errorf("%s: failed to create home directory: %v", funcName, err)
	}

	if !isSupportedDbType(cfg.DbType) {
		return nil, nil, fmt.Errorf("%s: the specified database type [%v] is invalid -- "+
			"supported types %v", funcName, cfg.DbType, database.SupportedDrivers())
	}

	if err := validateZMQOptions(&cfg); err != nil {
		return nil, nil, fmt.Errorf("%s: %v", funcName, err)
	}

	// Set logging file if presented
	if !cfg.NoFileLogging {
		// Initialize log rotation.  After log rotation has been initialized, the
		// logger variables may be used.
		if err := log.InitLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
			return nil, nil, fmt.Errorf("%s: %v", funcName, err)
		}
	}

	// Parse, validate, and set debug log level(s).
	if err := ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, fmt.Errorf("%s: %v", funcName, err)
	}

	// DebugPrintOrigins
	if cfg.DebugPrintOrigins {
		log.PrintOrigins(true)
	}

	metrics.Enabled = cfg.Metrics

	// Warn about missing config file only after all other configuration is
	// done.  This prevents the warning on help messages and invalid
	// options.  Note this should go directly before the return.
	if configFileError != nil {
		log.Warn("missing config file", "error", configFileError)
	}

	return &cfg, remainingArgs, nil
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *config.Config, options flags.Options) *flags.Parser {
	parser := flags.NewParser(cfg, options)
	return parser
}

// isSupportedDbType returns whether or not the passed database type is
// currently supported.  An empty driver list means the caller links no
// driver yet and the check is deferred to LoadBlockDB.
func isSupportedDbType(dbType string) bool {
	supported := database.SupportedDrivers()
	if len(supported) == 0 {
		return true
	}
	for _, driver := range supported {
		if dbType == driver {
			return true
		}
	}
	return false
}

// validateZMQOptions rejects publisher bindings without an address.
func validateZMQOptions(cfg *config.Config) error {
	for _, pub := range cfg.ZMQPublishers() {
		if len(strings.TrimSpace(pub.Address)) == 0 {
			return fmt.Errorf("the zmqpub%s option requires an address", pub.Topic)
		}
	}
	return nil
}

// ParseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func ParseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		lvl, err := log.LvlFromString(debugLevel)
		if err != nil {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}
		// Change the logging level for all subsystems.
		log.SetVerbosity(lvl)
		return nil
	}
	return fmt.Errorf("per subsystem debug levels [%v] are not supported", debugLevel)
}
