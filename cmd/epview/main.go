package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/config"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/log"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/navigator"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/service"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/spotify"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/store"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("epview %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to a discard logger if file logging fails
		logger = log.Discard()
	}
	logger = logger.With("session", uuid.NewString())
	slog.SetDefault(logger)

	logger.Info("starting epview", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		return runSetupFlow()
	}

	// Create catalog client
	client := spotify.NewClient(
		cfg.Spotify.ClientID,
		cfg.Spotify.ClientSecret,
		cfg.Spotify.Market,
		logger,
	)

	// Create local store (memory-only when the cache dir is disabled)
	st, err := store.New(cfg.Cache.Dir)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer st.Close()

	// Create services
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	catalog := service.NewCatalog(client, st, ttl, logger)
	favorites := service.NewFavorites(st, logger)
	nav := navigator.New(catalog, navigator.NewestFirst, logger)

	// Create TUI model
	model := tui.NewModel(catalog, favorites, nav, tui.Options{
		DefaultPageSize: cfg.Browse.PageSize,
		SearchLimit:     cfg.Browse.SearchLimit,
	}, logger)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow prompts for Spotify API credentials when not configured
func runSetupFlow() error {
	fmt.Println()
	fmt.Println("Welcome to epview!")
	fmt.Println()
	fmt.Println("You need a Spotify API client ID and secret.")
	fmt.Println("Create one at https://developer.spotify.com/dashboard")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	var clientID string
	for {
		fmt.Print("Client ID: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		clientID = strings.TrimSpace(input)
		if clientID != "" {
			break
		}
		fmt.Println("Client ID cannot be empty. Please try again.")
	}

	var clientSecret string
	for {
		fmt.Print("Client secret: ")
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read secret: %w", err)
		}
		clientSecret = strings.TrimSpace(string(secret))
		if clientSecret != "" {
			break
		}
		fmt.Println("Client secret cannot be empty. Please try again.")
	}

	if err := config.SaveCredentials(clientID, clientSecret); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run epview again to start the application.")

	return nil
}
