package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

var decodeUnion string

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Classify and decode raw updates",
	Long: `Reads a single update, a JSON array of updates or a whole getUpdates
response from file (or stdin) and prints each update's kind and decoded
payload. With --union, the input is instead resolved against the named union
(ChatMember, BotCommandScope, MenuButton, InputMedia, InlineQueryResult,
InputMessageContent, PassportElementError).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 && args[0] != "-" {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return err
		}
		if decodeUnion != "" {
			return resolveUnion(cmd.OutOrStdout(), decodeUnion, data)
		}
		return decodeInput(cmd.OutOrStdout(), data)
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeUnion, "union", "u", "", "Resolve the input against this union")
}

func decodeInput(w io.Writer, data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty input")
	}

	if data[0] == '{' {
		var resp struct {
			OK     *bool           `json:"ok"`
			Result json.RawMessage `json:"result"`
		}
		if err := json.Unmarshal(data, &resp); err == nil && resp.OK != nil && resp.Result != nil {
			data = resp.Result
		} else {
			env, err := telegram.DecodeEnvelope(data)
			printEnvelope(w, env, err)
			return nil
		}
	}

	batch, err := telegram.DecodeUpdates(data)
	if err != nil {
		return err
	}
	for _, d := range batch {
		var err error
		if d.Err != nil {
			err = d.Err
		}
		printEnvelope(w, d.Envelope, err)
	}
	return nil
}

func printEnvelope(w io.Writer, env *telegram.Envelope, err error) {
	if env == nil {
		fmt.Fprintf(w, "invalid update: %v\n", err)
		return
	}
	fmt.Fprintf(w, "update %d: %s\n", env.UpdateID, env.Type)
	if err != nil {
		fmt.Fprintf(w, "  error: %v\n", err)
		return
	}
	if env.Payload == nil {
		return
	}
	out, merr := json.MarshalIndent(env.Payload, "  ", "  ")
	if merr != nil {
		fmt.Fprintf(w, "  error: %v\n", merr)
		return
	}
	fmt.Fprintf(w, "  %s\n", out)
}

func resolveUnion(w io.Writer, name string, data []byte) error {
	reg := telegram.Schema()
	for _, u := range reg.Unions() {
		if u.Name != name {
			continue
		}
		m, err := reg.Resolve(u, data)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(m.Value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s variant %d: %s\n%s\n", u.Name, m.Index, m.Variant, out)
		return nil
	}
	return fmt.Errorf("unknown union %q", name)
}
