// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/ctxlog/internal/config"
	"github.com/mia-platform/ctxlog/internal/logger"
	"github.com/mia-platform/ctxlog/internal/server"
)

const (
	serveCmdUsage = "serve"
	serveCmdShort = "deliver the messages received over HTTP to the configured log sinks"
	serveCmdLong  = `Start an HTTP server that delivers the messages posted to it to the
	configured log sinks. The sinks are configured as for the log command.

	Every line of the body of a POST /log/LEVEL request is delivered as a separate
	message at LEVEL. The server answers on /-/healthz and /-/ready, and stops
	gracefully on SIGINT or SIGTERM.

	The server is configured with the HTTP_HOST, HTTP_PORT and
	DISABLE_STARTUP_MESSAGE environment variables; the flags override them.`

	serveCmdExample = `# Deliver the messages posted on port 8080 to a JSON file
	ctxlog serve --port 8080 --output file --file app.log --json

	# Send a message to a running server
	curl -X POST --data 'disk almost full' http://localhost:3000/log/warning`

	hostFlagName  = "host"
	hostFlagUsage = "Address the server binds to. Overrides HTTP_HOST."

	portFlagName  = "port"
	portFlagShort = "p"
	portFlagUsage = "Port the server listens on. Overrides HTTP_PORT."
)

// serveFlags collects the CLI options of the serve command.
type serveFlags struct {
	sinks logFlags
	host  string
	port  int

	loadServerConfig func() (*server.Config, error)
}

// ServeCmd returns the "serve" cli command that exposes the sinks over HTTP.
func ServeCmd() *cobra.Command {
	return newServeCmd(defaultConfigLoader, defaultServerConfigLoader)
}

func newServeCmd(loadConfig func() (*config.Config, error), loadServerConfig func() (*server.Config, error)) *cobra.Command {
	flags := &serveFlags{
		sinks:            logFlags{loadConfig: loadConfig},
		loadServerConfig: loadServerConfig,
	}
	cmd := &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.toOptions(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.sinks.addFlags(cmd)
	cmd.Flags().StringVar(&flags.host, hostFlagName, "", hostFlagUsage)
	cmd.Flags().IntVarP(&flags.port, portFlagName, portFlagShort, 0, portFlagUsage)
	return cmd
}

func (f *serveFlags) toOptions(cmd *cobra.Command) (*serveOptions, error) {
	cfg, err := f.sinks.sinksConfig(cmd)
	if err != nil {
		return nil, err
	}

	serverCfg, err := f.loadServerConfig()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed(hostFlagName) {
		serverCfg.HTTPHost = f.host
	}
	if cmd.Flags().Changed(portFlagName) {
		serverCfg.HTTPPort = f.port
	}

	return &serveOptions{
		config:       cfg,
		serverConfig: serverCfg,
		streams:      config.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()},
	}, nil
}

// serveOptions configures a single run of the serve command.
type serveOptions struct {
	config       *config.Config
	serverConfig *server.Config
	streams      config.Streams
}

func (o *serveOptions) validate() error {
	if err := o.config.Validate(); err != nil {
		return err
	}
	return o.serverConfig.Validate()
}

// execute serves until ctx is done or a termination signal is received. The
// logger active in ctx records the requests, the sinks receive the messages.
func (o *serveOptions) execute(ctx context.Context) error {
	sinks, closer, err := o.config.Build(o.streams)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warningf(ctx, "closing sinks: %s", err)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(o.serverConfig, logger.Active(ctx), sinks)
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()
	logger.Infof(ctx, "listening on %s:%d", o.serverConfig.HTTPHost, o.serverConfig.HTTPPort)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	logger.Info(ctx, "shutting down")
	if err := srv.Stop(); err != nil {
		return err
	}
	return <-errChan
}
