package backend

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ConnectionDetails carries credentials and execution options for a quantum
// backend. Credentials are injected configuration, never embedded constants.
type ConnectionDetails struct {
	Endpoint   string
	Token      string
	DeviceName string
	ShotCount  int
}

func AddBackendCommandlineArgs(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("backendEndpoint", "", "quantum backend endpoint (empty selects the local simulator)")
	rootCmd.PersistentFlags().String("backendToken", "", "quantum backend API token")
	rootCmd.PersistentFlags().String("backendDevice", "local_simulator", "backend device to execute circuits on")
	rootCmd.PersistentFlags().Int("shots", 1024, "number of measurement shots per circuit execution")
	_ = viper.BindPFlag("backendEndpoint", rootCmd.PersistentFlags().Lookup("backendEndpoint"))
	_ = viper.BindPFlag("backendToken", rootCmd.PersistentFlags().Lookup("backendToken"))
	_ = viper.BindPFlag("backendDevice", rootCmd.PersistentFlags().Lookup("backendDevice"))
	_ = viper.BindPFlag("shots", rootCmd.PersistentFlags().Lookup("shots"))
}

func ExtractCommandlineConnectionDetails() *ConnectionDetails {
	return &ConnectionDetails{
		Endpoint:   viper.GetString("backendEndpoint"),
		Token:      viper.GetString("backendToken"),
		DeviceName: viper.GetString("backendDevice"),
		ShotCount:  viper.GetInt("shots"),
	}
}

// Connect resolves connection details to a Backend. Only the bundled local
// simulator is currently dialable; remote transports live outside this
// module and register their own constructors.
func Connect(details *ConnectionDetails) (Backend, error) {
	if details.Endpoint == "" {
		return NewLocalBackend(LocalBackendConfig{}), nil
	}
	return nil, errors.Errorf("no transport available for backend endpoint %q", details.Endpoint)
}
