package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

var dropPending bool

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Manage the bot's webhook registration",
}

var webhookSetCmd = &cobra.Command{
	Use:   "set [url]",
	Short: "Register the webhook",
	Long: `Registers <url>/telegram/webhook, where url defaults to WEBHOOK_URL. When no
WEBHOOK_SECRET is configured a random secret is generated and printed; the
serve command must run with the same secret.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := client()
		if err != nil {
			return err
		}
		base := cfg.Web.WebhookURL
		if len(args) == 1 {
			base = args[0]
		}
		if base == "" {
			return fmt.Errorf("no webhook url (pass one or set WEBHOOK_URL)")
		}
		secret := cfg.Web.WebhookSecret
		generated := secret == ""
		if generated {
			secret = uuid.NewString()
		}

		url := webhookURL(base)
		err = api.SetWebhook(cmd.Context(), telegram.SetWebhookParams{
			URL:                url,
			SecretToken:        secret,
			DropPendingUpdates: dropPending,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "webhook set: %s\n", url)
		if generated {
			fmt.Fprintf(cmd.OutOrStdout(), "WEBHOOK_SECRET=%s\n", secret)
		}
		return nil
	},
}

var webhookDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the webhook so the bot can poll",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := client()
		if err != nil {
			return err
		}
		if err := api.DeleteWebhook(cmd.Context(), dropPending); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "webhook deleted")
		return nil
	},
}

var webhookInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the current webhook registration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := client()
		if err != nil {
			return err
		}
		info, err := api.GetWebhookInfo(cmd.Context())
		if err != nil {
			return err
		}
		printWebhookInfo(cmd, info)
		return nil
	},
}

func init() {
	webhookCmd.PersistentFlags().BoolVar(&dropPending, "drop-pending", false, "Drop updates queued on Telegram's side")
	webhookCmd.AddCommand(webhookSetCmd, webhookDeleteCmd, webhookInfoCmd)
}

func webhookURL(base string) string {
	return strings.TrimRight(base, "/") + "/telegram/webhook"
}

func printWebhookInfo(cmd *cobra.Command, info *telegram.WebhookInfo) {
	w := cmd.OutOrStdout()
	url := telegram.Deref(info.URL)
	if url == "" {
		url = "(none, polling)"
	}
	fmt.Fprintf(w, "url:      %s\n", url)
	fmt.Fprintf(w, "pending:  %d\n", telegram.Deref(info.PendingUpdateCount))
	if len(info.AllowedUpdates) > 0 {
		fmt.Fprintf(w, "allowed:  %s\n", strings.Join(info.AllowedUpdates, ", "))
	}
	if msg := telegram.Deref(info.LastErrorMessage); msg != "" {
		at := time.Unix(telegram.Deref(info.LastErrorDate), 0).UTC().Format(time.RFC3339)
		fmt.Fprintf(w, "error:    %s (%s)\n", msg, at)
	}
}
