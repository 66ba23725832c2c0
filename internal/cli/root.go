package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Options struct {
	Config string
}

func NewRootCmd() *cobra.Command {
	opts := &Options{}
	root := &cobra.Command{
		Use:   "ask-ollama",
		Short: "ask-ollama - query a local Ollama server",
	}

	cobra.OnInitialize(func() {
		initConfig(opts.Config)
	})

	root.PersistentFlags().StringVar(
		&opts.Config,
		"config",
		"",
		"config file (default: ./ask-ollama.yaml)",
	)
	_ = viper.BindPFlag("config", root.PersistentFlags().Lookup("config"))

	root.AddCommand(newAskCmd())
	root.AddCommand(newModelsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func initConfig(configFile string) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("ask-ollama")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/ask-ollama")
	}

	viper.SetEnvPrefix("ASK_OLLAMA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return
		}
		fmt.Fprintln(os.Stderr, err.Error())
	}
}
