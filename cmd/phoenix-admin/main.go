package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/PSchristopher/phoenix-admin/client"
	"github.com/PSchristopher/phoenix-admin/internal/app"
	"github.com/PSchristopher/phoenix-admin/internal/config"
	"github.com/PSchristopher/phoenix-admin/internal/logger"
	"github.com/PSchristopher/phoenix-admin/internal/mockbackend"
	"github.com/PSchristopher/phoenix-admin/internal/probe"
	"github.com/PSchristopher/phoenix-admin/session"
)

var backendURL string
var debug bool

// errSessionExpired is what the user sees when the backend rejects the
// stored credential.
var errSessionExpired = errors.New("session expired, run login")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "phoenix-admin",
		Short:         "Command line for the Phoenix marketplace admin backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = logger.NewConsole("phoenix-admin")

			// Set log level based on debug flag
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				logger.SetLevel(os.Getenv("PHOENIX_LOG_LEVEL"))
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&backendURL, "backend-url", "", "Base URL of the admin backend (default $PHOENIX_BACKEND_URL)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output and HTTP dumps")

	// Sub-commands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newWaitCmd())
	rootCmd.AddCommand(newOrdersCmd())
	rootCmd.AddCommand(newProductsCmd())
	rootCmd.AddCommand(newCustomersCmd())
	rootCmd.AddCommand(newVendorsCmd())
	rootCmd.AddCommand(newMockBackendCmd())

	return rootCmd
}

// loadConfig reads PHOENIX_* and applies the persistent flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if backendURL != "" {
		cfg.BackendURL = backendURL
		if err := cfg.ResolveDefaults(); err != nil {
			return nil, err
		}
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// withApp runs fn with a bootstrapped client and session store and maps a
// 401 to errSessionExpired.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.HTTPTimeout+5*time.Second)
	defer cancel()

	a, err := app.New(ctx, cfg, log.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	start := time.Now()
	err = fn(ctx, a)
	log.Debug().Str("command", cmd.CommandPath()).Dur("elapsed", time.Since(start)).Err(err).Msg("command completed")
	if client.IsUnauthorized(err) {
		return fmt.Errorf("%w (%v)", errSessionExpired, err)
	}
	return err
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --------------------------------------------------------------------
// Session commands
// --------------------------------------------------------------------

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("PHOENIX_ADMIN_PASSWORD")
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				resp, err := a.Client.Login(ctx, client.LoginRequest{Email: email, Password: password})
				if err != nil {
					return err
				}
				rec, err := a.Store.Login(ctx, resp.Token)
				if err != nil {
					return err
				}
				log.Info().Str("email", email).Str("session_id", rec.ID).Msg("logged in")
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"session_id": rec.ID,
					"admin":      resp.Admin,
				})
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (default $PHOENIX_ADMIN_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Store.Logout(ctx); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return err
			})
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session and what its credential claims",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				rec := a.Store.Current()
				if rec == nil {
					return errors.New("not logged in, run login")
				}
				out := map[string]interface{}{
					"session_id": rec.ID,
					"created_at": rec.CreatedAt,
				}
				claims, err := a.Store.Claims()
				switch {
				case err == nil:
					out["claims"] = claims
					out["expired"] = claims.Expired(time.Now())
				case errors.Is(err, session.ErrNotJWT):
					out["claims"] = nil
				default:
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
}

func newWaitCmd() *cobra.Command {
	var path string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait until the backend answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if timeout <= 0 {
				timeout = cfg.WaitTimeout
			}
			opts := []client.Option{client.WithHTTPTimeout(cfg.HTTPTimeout), client.WithDebugLogging(cfg.Debug)}
			if cfg.APIKey != "" {
				opts = append(opts, client.WithAPIKey(cfg.APIKey))
			}
			c, err := client.New(cfg.BackendURL, nil, opts...)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			attempts, err := probe.WaitReady(cmd.Context(), c, path, timeout)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Backend ready after %d attempt(s)\n", attempts)
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", "/health", "Path to probe")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Maximum wait (default $PHOENIX_WAIT_TIMEOUT)")
	return cmd
}

func newMockBackendCmd() *cobra.Command {
	var addr, email, password string

	cmd := &cobra.Command{
		Use:   "mock-backend",
		Short: "Serve an in-memory admin backend for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := mockbackend.New(
				mockbackend.WithAdmin(email, password),
				mockbackend.WithLogger(log.Logger),
			)
			log.Info().Str("addr", addr).Str("email", email).Msg("mock backend credentials")
			return backend.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":5000", "Listen address")
	cmd.Flags().StringVar(&email, "email", mockbackend.DefaultEmail, "Admin login to accept")
	cmd.Flags().StringVar(&password, "password", mockbackend.DefaultPassword, "Admin password to accept")
	return cmd
}
