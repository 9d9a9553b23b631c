package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flextime/internal/app"
)

func newAppService() app.Service {
	return app.NewService()
}

type catalogFlags struct {
	Catalog  string
	Profiles []string
	Timezone string
	Locale   string
}

func bindCatalogFlags(cmd *cobra.Command, flags *catalogFlags) {
	cmd.Flags().StringVar(&flags.Catalog, "catalog", "", "Pattern catalog path (yaml or toml)")
	cmd.Flags().StringSliceVar(&flags.Profiles, "profile", nil, "Profile catalog paths (override compose)")
	cmd.Flags().StringVar(&flags.Timezone, "timezone", "", "Parse timezone (default UTC)")
	cmd.Flags().StringVar(&flags.Locale, "locale", "", "Parse locale (default en-US)")
	_ = viper.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("profiles", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("timezone", cmd.Flags().Lookup("timezone"))
	_ = viper.BindPFlag("locale", cmd.Flags().Lookup("locale"))
}

func resolveCatalogOptions(cmd *cobra.Command, flags catalogFlags) app.CatalogOptions {
	return app.CatalogOptions{
		CatalogPath: resolveString(cmd, flags.Catalog, "catalog", "catalog"),
		Profiles:    resolveStrings(cmd, flags.Profiles, "profiles", "profile"),
		Timezone:    resolveString(cmd, flags.Timezone, "timezone", "timezone"),
		Locale:      resolveString(cmd, flags.Locale, "locale", "locale"),
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return value
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
