package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/urldial/urldial/cliout"
	"github.com/urldial/urldial/logutil"
	"github.com/urldial/urldial/urlparse"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse URL",
		Short: "Parse an http URL into its structural parts",
		Long: `Parse splits an absolute http URL into scheme, host, path, and port.

The URL must carry the literal "://" delimiter and the http scheme; the
path defaults to "/" and the port is always 80.`,
		Example: `  urldial parse http://example.com/index.html
  urldial parse --output json http://example.com`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logutil.Debug("parsing url", "url", args[0])

			u, err := urlparse.Parse(args[0])
			if err != nil {
				return err
			}

			return cliout.Print(u, func() {
				cliout.CommandHeader("parse")
				cliout.Label("Scheme", u.Scheme)
				cliout.Label("Host", u.Host)
				cliout.Label("Path", u.Path)
				cliout.Label("Port", strconv.Itoa(int(u.Port)))
			})
		},
	}
}
