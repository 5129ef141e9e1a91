package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-admin-client/admin"
	"github.com/jrsteele09/go-admin-client/auth"
	"github.com/jrsteele09/go-admin-client/client"
	"github.com/jrsteele09/go-admin-client/credentials/filerepo"
	"github.com/jrsteele09/go-admin-client/internal/config"
	"github.com/jrsteele09/go-admin-client/resources"
	"github.com/rs/zerolog"
)

const usage = `usage: adminctl <command> [flags]

commands:
  login    -email <email> -password <password>
  logout
  check
  whoami
  stats
  list     -resource <name> [-page N] [-size N] [-sort field|-field]
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "adminctl: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	cfg := config.New()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if os.Getenv("DEBUG") == "" {
		logger = logger.Level(zerolog.WarnLevel)
	}

	apiClient, err := client.New(cfg, filerepo.New(cfg.GetCredentialsFile()), client.WithLogger(logger))
	if err != nil {
		return err
	}

	session, err := auth.NewManager(apiClient, auth.WithLogger(logger))
	if err != nil {
		return err
	}

	service, err := admin.NewService(apiClient)
	if err != nil {
		return err
	}

	ctx := context.Background()

	switch command {
	case "login":
		return loginCommand(ctx, session, args)
	case "logout":
		result, err := session.Logout(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("logged out, continue at %s\n", result.RedirectTo)
		return nil
	case "check":
		result := session.Check(ctx)
		if !result.Authenticated {
			return fmt.Errorf("not authenticated, log in at %s", result.RedirectTo)
		}
		fmt.Println("authenticated")
		return nil
	case "whoami":
		identity := session.GetIdentity(ctx)
		if identity == nil {
			return fmt.Errorf("no identity, are you logged in?")
		}
		fmt.Printf("%s <%s> role=%s\n", identity.Name, identity.Email, identity.Role)
		return nil
	case "stats":
		return statsCommand(ctx, service)
	case "list":
		return listCommand(ctx, service, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func loginCommand(ctx context.Context, session *auth.Manager, args []string) error {
	flags := flag.NewFlagSet("login", flag.ExitOnError)
	email := flags.String("email", "", "admin email")
	password := flags.String("password", "", "admin password")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("email and password are required")
	}

	banner()
	result, err := session.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("logged in, continue at %s\n", result.RedirectTo)
	return nil
}

func statsCommand(ctx context.Context, service *admin.Service) error {
	stats, err := service.DashboardStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("users: %d total, %d active, %d banned\n", stats.TotalUsers, stats.ActiveUsers, stats.BannedUsers)
	fmt.Printf("matches: %d total, %d today\n", stats.TotalMatches, stats.TodayMatches)
	fmt.Printf("photos: %d, reports: %d (%d pending), active concepts: %d\n",
		stats.TotalPhotos, stats.TotalReports, stats.PendingReports, stats.ActiveConcepts)
	return nil
}

func listCommand(ctx context.Context, service *admin.Service, args []string) error {
	flags := flag.NewFlagSet("list", flag.ExitOnError)
	resource := flags.String("resource", "", "resource name (e.g. user, reports)")
	page := flags.Int("page", 1, "page number")
	size := flags.Int("size", 10, "page size")
	sortBy := flags.String("sort", "", "sort field, minus-prefixed for descending")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *resource == "" {
		return fmt.Errorf("resource is required")
	}

	query := resources.ListQuery{
		Pagination: resources.Pagination{Page: *page, PageSize: *size},
	}
	if *sortBy != "" {
		sorter := resources.Sorter{Field: *sortBy, Direction: resources.SortAsc}
		if sorter.Field[0] == '-' {
			sorter = resources.Sorter{Field: sorter.Field[1:], Direction: resources.SortDesc}
		}
		query.Sorters = []resources.Sorter{sorter}
	}

	list, err := service.Provider().List(ctx, *resource, query)
	if err != nil {
		return err
	}
	for _, item := range list.Items {
		fmt.Println(string(item))
	}
	fmt.Printf("%d of %d item(s)\n", len(list.Items), list.Total)
	return nil
}

func banner() {
	myFigure := figure.NewFigure("Admin Panel", "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
