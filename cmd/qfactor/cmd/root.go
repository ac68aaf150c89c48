package cmd

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/pkg/backend"
)

var cfgFile string

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qfactor",
		Short: "Factor semiprimes with a hybrid quantum/classical Shor pipeline",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.qfactor.yaml)")
	backend.AddBackendCommandlineArgs(root)

	root.AddCommand(
		runCmd(),
	)
	return root
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("error getting user home directory: %s", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".qfactor")
	}

	viper.AutomaticEnv()

	if err := viper.MergeInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			// The default config file is optional.
		case *os.PathError:
			// Same when given as a path.
		default:
			return fmt.Errorf("error reading config file %s: %s", viper.ConfigFileUsed(), err)
		}
	}
	return nil
}
