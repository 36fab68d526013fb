package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"grokcli/internal/config"
	"grokcli/internal/grok"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Options struct {
	Config string
	Key    string
}

var errNoAPIKey = errors.New("no API key: set GROK_API_KEY or pass --key")

func NewRootCmd() *cobra.Command {
	opts := &Options{}
	root := &cobra.Command{
		Use:           "grokcli",
		Short:         "Command-line client for the Grok chat API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(func() {
		initConfig(opts.Config)
	})

	root.PersistentFlags().StringVar(
		&opts.Config,
		"config",
		"",
		"config file (default: ./grokcli.yaml)",
	)
	root.PersistentFlags().StringVar(
		&opts.Key,
		"key",
		"",
		"API key (overrides GROK_API_KEY env var)",
	)

	root.AddCommand(newChatCmd(opts))
	root.AddCommand(newFileCmd(opts))
	root.AddCommand(newModelsCmd(opts))
	root.AddCommand(newVerifyCmd(opts))
	root.AddCommand(newImageCmd(opts))
	root.AddCommand(newVideoCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func initConfig(configFile string) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("grokcli")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/grokcli")
	}

	viper.SetEnvPrefix("GROKCLI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("api.key", "GROK_API_KEY")
	_ = viper.BindEnv("api.url")
	_ = viper.BindEnv("api.model")
	_ = viper.BindEnv("api.timeout")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return
		}
		fmt.Fprintln(os.Stderr, err.Error())
	}
}

// newClient resolves configuration and the credential. A missing key
// fails here, before any request is built.
func newClient(opts *Options) (*grok.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	key, err := resolveKey(opts.Key, cfg.API.Key)
	if err != nil {
		return nil, err
	}
	return grok.NewClient(grok.Config{
		BaseURL: cfg.API.URL,
		Key:     key,
		Model:   cfg.API.Model,
		Timeout: cfg.API.Timeout,
	})
}

// resolveKey prefers the explicit flag over the configured/env key.
func resolveKey(flagKey, configKey string) (string, error) {
	key := firstNonEmpty(flagKey, configKey)
	if key == "" {
		return "", errNoAPIKey
	}
	return key, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
