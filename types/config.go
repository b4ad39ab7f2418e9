package types

import (
	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the top-level node configuration, loaded from TOML.
type Config struct {
	Title   string            `toml:"title"`
	Log     *Log              `toml:"log"`
	DB      *DBConfig         `toml:"db"`
	RPC     *RPCConfig        `toml:"rpc"`
	Genesis []*GenesisAccount `toml:"genesis"`
	RPS     *RPSConfig        `toml:"rps"`
}

// Log configures console and rotated-file logging.
type Log struct {
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	LogFile         string `toml:"logFile"`
	MaxFileSize     uint32 `toml:"maxFileSize"`
	MaxBackups      uint32 `toml:"maxBackups"`
	MaxAge          uint32 `toml:"maxAge"`
	LocalTime       bool   `toml:"localTime"`
	Compress        bool   `toml:"compress"`
	CallerFile      bool   `toml:"callerFile"`
	CallerFunction  bool   `toml:"callerFunction"`
}

// DBConfig selects the storage backend for statedb and localdb.
type DBConfig struct {
	Driver  string `toml:"driver"`
	DBPath  string `toml:"dbPath"`
	DBCache int32  `toml:"dbCache"`
}

// RPCConfig configures the JSON-RPC listener.
type RPCConfig struct {
	JrpcBindAddr string `toml:"jrpcBindAddr"`
}

// GenesisAccount funds one address at first open, denominated in Coin.
type GenesisAccount struct {
	Addr   string `toml:"addr"`
	Amount int64  `toml:"amount"`
}

// RPSConfig carries the game contract settings.
type RPSConfig struct {
	Admin string `toml:"admin"`
}

// InitCfg loads and validates a config file.
func InitCfg(path string) (*Config, error) {
	var cfg Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if cfg.DB == nil {
		cfg.DB = &DBConfig{Driver: "leveldb", DBPath: "datadir", DBCache: 64}
	}
	if cfg.DB.Driver == "" {
		cfg.DB.Driver = "leveldb"
	}
	if cfg.DB.DBPath == "" {
		cfg.DB.DBPath = "datadir"
	}
	if cfg.RPC == nil {
		cfg.RPC = &RPCConfig{JrpcBindAddr: "localhost:8801"}
	}
	if cfg.RPS == nil || cfg.RPS.Admin == "" {
		return nil, errors.New("config: rps.admin address is required")
	}
	return &cfg, nil
}
