package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AlexYaroshenko/tgwire/internal/bot"
	"github.com/AlexYaroshenko/tgwire/internal/store"
	"github.com/AlexYaroshenko/tgwire/internal/telegram"
	"github.com/AlexYaroshenko/tgwire/internal/web"
)

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Receive updates by long polling",
	Long: `Deletes any configured webhook, then long-polls getUpdates and hands every
decoded update to the bot. Stops on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd.Context(), false)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Receive updates through the webhook server",
	Long: `Serves /telegram/webhook, /status and /health on PORT. Register the webhook
first with "tgbot webhook set".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd.Context(), true)
	},
}

func runBot(ctx context.Context, webhook bool) error {
	api, err := client()
	if err != nil {
		return err
	}
	admins, err := cfg.AdminChats()
	if err != nil {
		return err
	}
	st, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	defer st.Close()

	me, err := api.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("getMe: %w", err)
	}
	logger.Info("bot authorized",
		zap.String("username", telegram.DisplayName(me)),
		zap.String("store", cfg.Store.Driver))

	if err := api.SetMyCommands(ctx, commands, telegram.ScopeDefault(), ""); err != nil {
		logger.Warn("setMyCommands failed", zap.Error(err))
	}

	a := &app{api: api, store: st, admins: admins, logger: logger.Named("app")}
	b := bot.New(a.router(), st, api, logger.Named("bot"))

	a.notify(ctx, "Bot started: "+telegram.DisplayName(me))
	defer a.notify(context.WithoutCancel(ctx), "Bot stopped: "+telegram.DisplayName(me))

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Web.KeepAliveURL != "" {
		g.Go(func() error {
			web.KeepAlive(gctx, nil, cfg.Web.KeepAliveURL, 14*time.Minute, logger.Named("keepalive"))
			return nil
		})
	}

	if webhook {
		srv := web.NewServer(b, cfg.Web.WebhookSecret, logger.Named("web"))
		g.Go(func() error {
			return srv.ListenAndServe(gctx, ":"+cfg.Web.Port)
		})
		return g.Wait()
	}

	if err := api.DeleteWebhook(ctx, false); err != nil {
		return fmt.Errorf("deleteWebhook: %w", err)
	}
	updates := make(chan *telegram.Envelope)
	poller := telegram.NewPoller(api, cfg.Telegram.PollTimeout, nil, logger.Named("poller"))
	g.Go(func() error {
		poller.Run(gctx, updates)
		return nil
	})
	g.Go(func() error {
		b.Run(gctx, updates)
		return nil
	})
	return g.Wait()
}
