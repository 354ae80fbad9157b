// Command mayactl shows the member QR code in a terminal and keeps it fresh.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"maya-connect/internal/domain/auth"
	"maya-connect/internal/domain/qr"
	"maya-connect/internal/domain/session"
	"maya-connect/internal/domain/user"
	"maya-connect/internal/infra/backend"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/pkg/jwt"
	"maya-connect/internal/pkg/usermsg"
	"maya-connect/internal/usecase/qrsession"

	"github.com/spf13/cobra"
)

// retryDelay is the wait before reloading after a failed load that signing in
// again would not fix.
const retryDelay = 15 * time.Second

type app struct {
	configPath string
	cfg        Config
	logger     *slog.Logger
	clock      clock.Clock
}

func main() {
	a := &app{clock: clock.NewRealClock()}
	if err := a.rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, usermsg.For(err))
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	home, _ := os.UserHomeDir()
	root := &cobra.Command{
		Use:           "mayactl",
		Short:         "Maya member QR code in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "init" {
				return nil
			}
			cfg, err := LoadConfig(a.configPath, home)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cfg.Log.Level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", filepath.Join(home, ".maya", "config.yaml"), "config file")

	root.AddCommand(
		a.initCmd(home),
		a.loginCmd(),
		a.logoutCmd(),
		a.qrCmd(),
		a.exportCmd(),
	)
	return root
}

func (a *app) initCmd(home string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(filepath.Dir(a.configPath), 0o700); err != nil {
				return err
			}
			if err := WriteConfig(a.configPath, Default(home)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", a.configPath)
			return nil
		},
	}
}

func (a *app) loginCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := os.Getenv("MAYA_PASSWORD")
			if password == "" {
				return errs.New("MAYA_PASSWORD is not set")
			}
			creds, err := auth.NewCredentials(email, password)
			if err != nil {
				return err
			}

			client := backend.New(a.cfg.BackendConfig(), a.logger)
			pair, err := client.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}

			stored := storedSession{AccessToken: pair.AccessToken, ExpiresAt: pair.ExpiresAt, Email: email}
			if claims, err := jwt.NewService("", nil).ValidateToken(pair.AccessToken); err == nil {
				stored.UserID = claims.UserID
				if stored.ExpiresAt.IsZero() {
					stored.ExpiresAt = claims.ExpiresAt
				}
			}
			if err := saveSession(a.cfg.Session.TokenFile, stored); err != nil {
				return err
			}
			a.logger.Info("logged in", "email", email, "expires_at", stored.ExpiresAt)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stored, err := loadSession(a.cfg.Session.TokenFile)
			if err != nil {
				return err
			}
			client := backend.New(a.cfg.BackendConfig(), a.logger)
			if err := client.Logout(cmd.Context(), stored.AccessToken); err != nil {
				a.logger.Warn("backend logout failed", "error", err)
			}
			if err := os.Remove(a.cfg.Session.TokenFile); err != nil && !os.IsNotExist(err) {
				return err
			}
			a.logger.Info("logged out")
			return nil
		},
	}
}

func (a *app) qrCmd() *cobra.Command {
	var watch, force bool
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Show the member QR code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, sess, err := a.qrService()
			if err != nil {
				return err
			}
			if !watch {
				snap, err := svc.Current(cmd.Context(), sess, force)
				if err != nil {
					return err
				}
				printSnapshot(cmd.OutOrStdout(), snap)
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ctrl := svc.Open(sess)
			defer ctrl.Close()
			return a.watch(ctx, cmd.OutOrStdout(), ctrl, sess, force)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "keep the code fresh until interrupted")
	cmd.Flags().BoolVar(&force, "force", false, "ask the backend for a new token")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the export payload for the current QR code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, sess, err := a.qrService()
			if err != nil {
				return err
			}
			export, err := svc.Export(cmd.Context(), sess)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "file:    %s\nimage:   %s\nexpires: %s\n", export.FileName, export.ImageURL, export.ExpiresAt)
			return nil
		},
	}
}

// watch prints every update of ctrl until ctx ends or sess expires. A failed
// load is retried after retryDelay unless it needs a new sign-in, in which
// case the error is returned.
func (a *app) watch(ctx context.Context, out io.Writer, ctrl *qrsession.Controller, sess *session.Session, force bool) error {
	updates, unsubscribe := ctrl.Subscribe()
	defer unsubscribe()

	go ctrl.Load(ctx, force)

	var (
		retry      chan struct{}
		retryTimer clock.Timer
	)
	defer func() {
		if retryTimer != nil {
			retryTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("stopping QR watch")
			return nil
		case <-sess.Done():
			return errs.ErrSessionExpired
		case <-retry:
			retry, retryTimer = nil, nil
			go ctrl.Load(ctx, false)
		case snap, ok := <-updates:
			if !ok {
				select {
				case <-sess.Done():
					return errs.ErrSessionExpired
				default:
					return nil
				}
			}
			printSnapshot(out, snap)
			if snap.State != qrsession.StateError || retry != nil {
				continue
			}
			err := ctrl.Err()
			if needsSignIn(err) {
				return err
			}
			a.logger.Warn("QR load failed, retrying", "error", err, "retry_in", retryDelay)
			ch := make(chan struct{})
			retry = ch
			retryTimer = a.clock.AfterFunc(retryDelay, func() { close(ch) })
		}
	}
}

func needsSignIn(err error) bool {
	status := usermsg.Status(err)
	return status == 401 || status == 403
}

// expireOnDeadline invalidates sess once its stored expiry passes.
func expireOnDeadline(clk clock.Clock, sess *session.Session) {
	exp := sess.ExpiresAt()
	if exp.IsZero() {
		return
	}
	t := clk.AfterFunc(exp.Sub(clk.Now()), func() { sess.Invalidate() })
	sess.OnInvalidate(func() { t.Stop() })
}

func (a *app) qrService() (*qrsession.Service, *session.Session, error) {
	stored, err := loadSession(a.cfg.Session.TokenFile)
	if err != nil {
		return nil, nil, err
	}
	sess, err := session.New(stored.AccessToken, user.Profile{ID: stored.UserID, Email: stored.Email}, stored.ExpiresAt)
	if err != nil {
		return nil, nil, err
	}
	if !sess.IsAuthenticated(a.clock.Now()) {
		return nil, nil, errs.ErrSessionExpired
	}
	expireOnDeadline(a.clock, sess)

	client := backend.New(a.cfg.BackendConfig(), a.logger)
	svc, err := qrsession.NewService(client, a.cfg.QRConfig(), a.clock, a.logger)
	if err != nil {
		return nil, nil, err
	}
	return svc, sess, nil
}

func printSnapshot(out io.Writer, snap qrsession.Snapshot) {
	switch snap.State {
	case qrsession.StateDisplaying:
		fmt.Fprintf(out, "token:   %s\n", snap.Token)
		if snap.ExpiresAt != nil {
			fmt.Fprintf(out, "expires: %s\n", snap.ExpiresAt.Local().Format("15:04:05"))
		}
		if snap.Image != nil && snap.Image.Source != qr.ImageSourceInline {
			fmt.Fprintf(out, "image:   %s\n", snap.Image.URI)
		}
	case qrsession.StateError:
		fmt.Fprintf(out, "error:   %s\n", snap.Error)
	default:
		fmt.Fprintf(out, "%s...\n", snap.State)
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
