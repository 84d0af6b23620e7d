package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/foursquare/config"
	"github.com/s0up4200/foursquare/entities"
	"github.com/s0up4200/foursquare/notification"
)

// render writes v in the requested format. table is used for the table
// format; when nil, tables fall back to JSON.
func render(w io.Writer, format string, v any, table func(tw *tabwriter.Writer)) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		// Round trip through JSON so keys follow the json tags
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var tree any
		if err := json.Unmarshal(data, &tree); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatDump:
		spew.Fdump(w, v)
		return nil
	case config.FormatTable:
		if table == nil {
			return render(w, config.FormatJSON, v, nil)
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func fullName(u *entities.CompactUser) string {
	if u == nil {
		return ""
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func count(c *entities.Count) int64 {
	if c == nil {
		return 0
	}
	return c.Count
}

func venueTable(venues []entities.CompactVenue) func(tw *tabwriter.Writer) {
	return func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tCITY\tDISTANCE\tCHECKINS\tHERE NOW")
		for _, v := range venues {
			category, city, distance := "", "", ""
			if c := v.PrimaryCategory(); c != nil {
				category = c.Name
			}
			if v.Location != nil {
				city = v.Location.City
				if v.Location.Distance > 0 {
					distance = fmt.Sprintf("%dm", v.Location.Distance)
				}
			}
			var checkins, hereNow int64
			if v.Stats != nil {
				checkins = v.Stats.CheckinsCount
			}
			if v.HereNow != nil {
				hereNow = v.HereNow.Count
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%d\n", v.ID, v.Name, category, city, distance, checkins, hereNow)
		}
	}
}

func userTable(users []entities.CompactUser) func(tw *tabwriter.Writer) {
	return func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tNAME\tHOME CITY\tRELATIONSHIP")
		for i := range users {
			u := &users[i]
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, fullName(u), u.HomeCity, u.Relationship)
		}
	}
}

func checkinTable(checkins []entities.Checkin) func(tw *tabwriter.Writer) {
	return func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tWHEN\tVENUE\tSHOUT")
		for _, c := range checkins {
			when := ""
			if !c.CreatedAt.IsZero() {
				when = c.CreatedAt.Local().Format("2006-01-02 15:04")
			}
			venue := ""
			if c.Venue != nil {
				venue = c.Venue.Name
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, when, venue, c.Shout)
		}
	}
}

// categoryTable prints the category tree indented by depth
func categoryTable(categories []entities.Category) func(tw *tabwriter.Writer) {
	var walk func(tw *tabwriter.Writer, cats []entities.Category, depth int)
	walk = func(tw *tabwriter.Writer, cats []entities.Category, depth int) {
		for _, c := range cats {
			fmt.Fprintf(tw, "%s\t%s%s\n", c.ID, strings.Repeat("  ", depth), c.Name)
			walk(tw, c.Categories, depth+1)
		}
	}
	return func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tNAME")
		walk(tw, categories, 0)
	}
}

// printNotifications writes a one line summary per notification
func printNotifications(w io.Writer, ns []notification.Notification) {
	for _, n := range ns {
		switch n := n.(type) {
		case notification.Message:
			fmt.Fprintf(w, "* %s\n", n.Message)
		case notification.Badge:
			if n.Badge != nil {
				fmt.Fprintf(w, "* badge unlocked: %s\n", n.Badge.Name)
			}
		case notification.Mayorship:
			fmt.Fprintf(w, "* mayorship: %s\n", n.Message)
		case notification.Score:
			fmt.Fprintf(w, "* +%d points\n", n.Total)
		case notification.Tray:
			fmt.Fprintf(w, "* %d unread\n", n.UnreadCount)
		default:
			fmt.Fprintf(w, "* %s notification\n", n.Kind())
		}
	}
}
