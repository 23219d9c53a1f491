// Package cli wires the command surface: config, logger, session store,
// gateway facade and use cases, in that order, then hands off to cobra.
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linkfeed/cli/api/client"
	"github.com/linkfeed/cli/internal/config"
	"github.com/linkfeed/cli/pkg/logger"
	"github.com/linkfeed/cli/repository"
	boltstore "github.com/linkfeed/cli/repository/bolt"
	"github.com/linkfeed/cli/repository/memory"
	"github.com/linkfeed/cli/usecase/interact"
	"github.com/linkfeed/cli/usecase/session"
)

type app struct {
	cfg          *config.Config
	logger       *zap.Logger
	store        repository.SessionStore
	api          *client.Client
	sessions     *session.Manager
	interactions *interact.Controller
}

var (
	apiFlag       string
	verboseFlag   bool
	noPersistFlag bool
)

// Execute is the main entry point called from main.go.
func Execute() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "linkfeed",
		Short: "Command-line client for the linkfeed platform",
		Long:  "linkfeed talks to the platform gateway: session management, the post feed, connections and notifications.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiFlag, "api", "", "gateway base URL (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&noPersistFlag, "no-persist", false, "keep the session in memory only")

	rootCmd.AddCommand(
		newLoginCmd(a),
		newSignupCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newFeedCmd(a),
		newPostCmd(a),
		newShowCmd(a),
		newLikeCmd(a),
		newUnlikeCmd(a),
		newConnectionsCmd(a),
		newNotificationsCmd(a),
	)

	err := rootCmd.Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if apiFlag != "" {
		cfg.API.BaseURL = apiFlag
	}
	if noPersistFlag {
		cfg.Store.Disable = true
	}
	if verboseFlag {
		cfg.Logger.Level = "debug"
	}
	a.cfg = cfg

	log, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		return err
	}
	a.logger = log

	if cfg.Store.Disable {
		a.store = memory.New()
	} else {
		store, err := boltstore.Open(cfg.Store.Path, log)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}
		a.store = store
	}

	// the facade reads the token through the manager, the manager logs in
	// through the facade; the closure breaks the construction cycle
	var sessions *session.Manager
	a.api = client.New(
		client.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout},
		client.TokenFunc(func() string {
			if sessions == nil {
				return ""
			}
			return sessions.Token()
		}),
		log,
	)
	sessions = session.New(a.store, a.api, log)
	a.sessions = sessions
	a.sessions.Bootstrap()

	a.interactions = interact.New(a.api, a.api, log)
	return nil
}

func (a *app) close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// ctx returns a request context carrying a fresh correlation ID for this
// command invocation.
func (a *app) ctx() context.Context {
	return logger.ContextWithRequestID(context.Background(), uuid.NewString())
}

// selfID returns the authenticated user's numeric id, or 0 when unknown.
func (a *app) selfID() int64 {
	s := a.sessions.Current()
	if s.Identity == nil {
		return 0
	}
	id, err := strconv.ParseInt(s.Identity.ID, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (a *app) requireSession() error {
	if a.sessions.Token() == "" {
		return fmt.Errorf("not logged in; run: linkfeed login")
	}
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q is not a valid id", arg)
	}
	return id, nil
}
