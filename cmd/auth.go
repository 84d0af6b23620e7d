package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// authCmd groups the OAuth helpers
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Obtain an OAuth token",
	Long: `Obtain an OAuth token for user endpoints. Open the URL printed by
"auth url", approve access, then pass the code parameter from the redirect
to "auth exchange". Store the printed token as foursquare.oauth_token.`,
}

var authURLCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the authorization URL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		u, err := client.AuthenticationURL()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

var authExchangeCmd = &cobra.Command{
	Use:   "exchange <code>",
	Short: "Exchange an authorization code for a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		token, err := client.AuthenticateCode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		logger.Info().Msg("Authorization code exchanged")
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	authCmd.AddCommand(authURLCmd)
	authCmd.AddCommand(authExchangeCmd)
	rootCmd.AddCommand(authCmd)
}
