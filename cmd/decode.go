package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/foursquare/config"
	"github.com/s0up4200/foursquare/entities"
	"github.com/s0up4200/foursquare/envelope"
	"github.com/s0up4200/foursquare/mapping"
	"github.com/s0up4200/foursquare/notification"
	"github.com/s0up4200/foursquare/transport"
)

var (
	decodeEntity   string
	decodeKey      string
	decodeCallback bool
)

// decodeCmd decodes a saved API response without contacting the API
var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Decode a saved API response",
	Long: `Decode a saved API response body. The value under --key in the response
object is mapped as --entity; an array value is mapped element by element.
Use "-" to read from stdin. Available entities:

  ` + strings.Join(entities.Names(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeEntity, "entity", "e", "", "entity type to map the value as")
	decodeCmd.Flags().StringVarP(&decodeKey, "key", "k", "", "response key holding the value")
	decodeCmd.Flags().BoolVar(&decodeCallback, "callback", false, "the body is wrapped in c(...);")

	rootCmd.AddCommand(decodeCmd)
}

// decoded is the printable outcome of decoding a saved response
type decoded struct {
	Meta          envelope.Meta                `json:"meta"`
	Result        any                          `json:"result,omitempty"`
	Notifications []notification.Notification `json:"notifications,omitempty"`
}

// decodeResponse runs a saved body through the same envelope, mapping and
// notification steps an API call uses
func decodeResponse(data []byte, callback, tolerant, keepUnrecognized bool, entity, key string, log zerolog.Logger) (*decoded, error) {
	var decode mapping.Decoder
	if entity != "" {
		var ok bool
		if decode, ok = entities.Lookup(entity); !ok {
			return nil, fmt.Errorf("unknown entity %q", entity)
		}
	}

	env, err := envelope.Decode(&transport.Response{StatusCode: 200, Body: data}, callback)
	if err != nil {
		return nil, err
	}

	mapper := mapping.NewMapper(tolerant, log)
	notifications, err := notification.NewDispatcher(mapper, keepUnrecognized, log).DispatchAll(env.Notifications)
	if err != nil {
		return nil, err
	}

	out := &decoded{Meta: env.Meta, Notifications: notifications}
	if !env.OK() {
		return out, nil
	}

	if key == "" {
		out.Result = env.Response
		return out, nil
	}
	raw, err := env.Value(key)
	if err != nil {
		return nil, err
	}
	if decode == nil {
		out.Result = raw
		return out, nil
	}

	items, isArray := raw.([]any)
	if !isArray {
		if out.Result, err = decode(mapper, raw); err != nil {
			return nil, err
		}
		return out, nil
	}

	results := make([]any, len(items))
	for i, item := range items {
		if results[i], err = decode(mapper, item); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
	}
	out.Result = results
	return out, nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	fc := cfg.Foursquare
	out, err := decodeResponse(data, decodeCallback, fc.SkipNonExistingFields, fc.KeepUnrecognized, decodeEntity, decodeKey, logger)
	if err != nil {
		return err
	}
	if !out.Meta.OK() {
		logger.Warn().
			Int("code", out.Meta.Code).
			Str("type", out.Meta.ErrorType).
			Str("detail", out.Meta.ErrorDetail).
			Msg("Response carries an error meta")
	}

	format := cfg.Output.Format
	if format == config.FormatTable {
		format = config.FormatJSON
	}
	return render(cmd.OutOrStdout(), format, out, nil)
}
