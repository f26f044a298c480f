/*
Copyright © 2023 wetrycode

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wetrycode/apiresponse"
)

var cliLog = apiresponse.GetLogger("cli")

// NewRootCmd the apiresponse command reading descriptors from fs
func NewRootCmd(fs afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "apiresponse",
		Short:         "apiresponse normalizes responses and errors into API gateway envelopes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newRenderCmd(fs))
	return rootCmd
}

func newRenderCmd(fs afero.Fs) *cobra.Command {
	var asError bool
	var configDir string
	config := apiresponse.NewConfiguration()
	config.SetFs(fs)

	renderCmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a JSON response descriptor as a gateway envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configDir != "" {
				if err := config.Load(configDir); err != nil {
					return err
				}
			}
			finalizer, err := apiresponse.NewFromConfig(config, apiresponse.WithLogger(cliLog))
			if err != nil {
				return err
			}
			data, err := afero.ReadFile(fs, args[0])
			if err != nil {
				return &apiresponse.DescriptorError{Err: err}
			}
			envelope, err := render(finalizer, data, asError)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
				return err
			}
			output, err := finalizer.Output(envelope)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		},
	}
	renderCmd.Flags().BoolVarP(&asError, "error", "e", false, "Treat FILE as an error descriptor {statusCode, headers, body, message}")
	renderCmd.Flags().StringVarP(&configDir, "config", "c", "", "Directory containing settings.yaml")
	renderCmd.Flags().StringP("mode", "m", "", "Output mode, gateway or offline")
	if err := bindModeFlag(config, renderCmd); err != nil {
		panic(err)
	}
	return renderCmd
}

// bindModeFlag let --mode override the response.mode setting
func bindModeFlag(config *apiresponse.Configuration, cmd *cobra.Command) error {
	return config.BindPFlag(apiresponse.ResponseModeKey, cmd.Flags().Lookup("mode"))
}

func render(finalizer *apiresponse.Finalizer, data []byte, asError bool) (*apiresponse.Envelope, error) {
	if asError {
		httpErr, err := apiresponse.DecodeError(data)
		if err != nil {
			return nil, err
		}
		return finalizer.SendError(httpErr)
	}
	response, err := apiresponse.DecodeResponse(data)
	if err != nil {
		return nil, err
	}
	return finalizer.Send(response)
}

// Execute run the command against the local filesystem
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
