package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func ParseArgs() Args {
	// server config
	pflag.String("server-url", "0.0.0.0:8080", "")

	// auth config
	pflag.String("jwt-secret", "", "")
	pflag.Int("token-ttl-hours", 24, "")

	// db config; an empty db-host selects the in-memory store
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")

	// bootstrap admin account
	pflag.String("admin-email", "admin@auction.local", "")
	pflag.String("admin-password", "", "")
	pflag.String("admin-company", "Auction House", "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("AUCTION")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// initial arguments
	return Args{
		ServerURL:     viper.GetString("server-url"),
		JWTSecret:     viper.GetString("jwt-secret"),
		TokenTTLHours: viper.GetInt("token-ttl-hours"),
		DB: DBArgs{
			User:     viper.GetString("db-user"),
			Password: viper.GetString("db-password"),
			Host:     viper.GetString("db-host"),
			Port:     viper.GetInt("db-port"),
			Database: viper.GetString("db-database"),
		},
		Admin: AdminArgs{
			Email:    viper.GetString("admin-email"),
			Password: viper.GetString("admin-password"),
			Company:  viper.GetString("admin-company"),
		},
	}
}

type Args struct {
	ServerURL     string
	JWTSecret     string
	TokenTTLHours int
	DB            DBArgs
	Admin         AdminArgs
}

type DBArgs struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
}

type AdminArgs struct {
	Email    string
	Password string
	Company  string
}

func (args Args) Validate() bool {
	return args.ServerURL != "" && args.JWTSecret != "" && args.TokenTTLHours > 0
}
