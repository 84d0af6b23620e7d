package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/s0up4200/foursquare/foursquare"
)

var checkinsLimit int

// userCmd shows a user profile
var userCmd = &cobra.Command{
	Use:   "user [id]",
	Short: "Show a user's profile",
	Long:  `Show a user's profile. Without an id the authenticated user is shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUser,
}

// friendsCmd lists a user's friends
var friendsCmd = &cobra.Command{
	Use:   "friends [id]",
	Short: "List a user's friends",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFriends,
}

// checkinsCmd lists a user's checkin history
var checkinsCmd = &cobra.Command{
	Use:   "checkins",
	Short: "List the authenticated user's recent checkins",
	Args:  cobra.NoArgs,
	RunE:  runCheckins,
}

func init() {
	checkinsCmd.Flags().IntVarP(&checkinsLimit, "limit", "l", 20, "number of checkins to show")

	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(friendsCmd)
	rootCmd.AddCommand(checkinsCmd)
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func runUser(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.User(cmd.Context(), optionalArg(args))
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}

	u := res.Result
	out := cmd.OutOrStdout()
	printNotifications(cmd.ErrOrStderr(), res.Notifications)
	return render(out, cfg.Output.Format, u, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "ID\t%s\n", u.ID)
		fmt.Fprintf(tw, "Name\t%s\n", fullName(&u.CompactUser))
		fmt.Fprintf(tw, "Home city\t%s\n", u.HomeCity)
		if u.Contact != nil {
			fmt.Fprintf(tw, "Email\t%s\n", u.Contact.Email)
		}
		checkins := int64(0)
		if u.Checkins != nil {
			checkins = u.Checkins.Count
		}
		fmt.Fprintf(tw, "Checkins\t%d\n", checkins)
		fmt.Fprintf(tw, "Badges\t%d\n", count(u.Badges))
		fmt.Fprintf(tw, "Tips\t%d\n", count(u.Tips))
		if u.Mayorships != nil {
			fmt.Fprintf(tw, "Mayorships\t%d\n", u.Mayorships.Count)
		}
	})
}

func runFriends(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.UsersFriends(cmd.Context(), optionalArg(args))
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, res.Result, userTable(res.Result.Items))
}

func runCheckins(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.UsersCheckins(cmd.Context(), "", &foursquare.UsersCheckinsParams{Limit: checkinsLimit})
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}

	logger.Debug().Int64("total", res.Result.Count).Int("shown", len(res.Result.Items)).Msg("Fetched checkins")
	return render(cmd.OutOrStdout(), cfg.Output.Format, res.Result, checkinTable(res.Result.Items))
}
