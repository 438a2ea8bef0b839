package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clientpulse/dashboard/internal/core/domain"
	"github.com/clientpulse/dashboard/internal/core/engine"
	"github.com/clientpulse/dashboard/internal/core/ports"
	"github.com/clientpulse/dashboard/internal/core/service"
	"github.com/clientpulse/dashboard/pkg/logger"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print KPIs and client health from the configured source",
	Long: `Print the KPI summary and a health table for the clients matching the
given filters.

Examples:
  # Every client, worst health first
  report --sort healthScore --order asc

  # Paid beauty clients as JSON
  report --status Paid --industry Beauty --format json

  # Clients that joined in 2024
  report --from 2024-01-01 --to 2024-12-31`,
	RunE: runReport,
}

func init() {
	addReportFlags(reportCmd)
	rootCmd.AddCommand(reportCmd)
}

func addReportFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("search", "", "free-text search")
	f.StringSlice("industry", nil, "industries to include")
	f.StringSlice("status", nil, "statuses to include (Paid, Trial, FreeTier)")
	f.StringSlice("health", nil, "health categories to include (Good, Warning, Critical)")
	f.String("from", "", "join date lower bound (YYYY-MM-DD)")
	f.String("to", "", "join date upper bound (YYYY-MM-DD, inclusive)")
	f.String("sort", "healthScore", "sort key")
	f.String("order", "desc", "asc or desc")
	f.Int("limit", 100, "maximum rows")
	f.String("format", "table", "output format: table or json")
}

type reportRow struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Industry string                `json:"industry"`
	Status   string                `json:"status"`
	Score    int                   `json:"score"`
	Category domain.HealthCategory `json:"category"`
	Stored   int                   `json:"stored_score"`
}

type report struct {
	KPIs    *domain.KPISummary `json:"kpis"`
	Clients []reportRow        `json:"clients"`
	Total   int                `json:"total"`
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logger.Component("report")

	input, err := reportInput(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}

	repo, closeSource, err := openSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = closeSource(context.Background()) }()

	svc := service.NewClientService(repo, engine.New(), nil, zerolog.Nop())
	rep, err := buildReport(ctx, svc, input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	writeReport(out, rep)
	return nil
}

func reportInput(cmd *cobra.Command) (ports.ListClientsInput, error) {
	f := cmd.Flags()
	search, _ := f.GetString("search")
	industries, _ := f.GetStringSlice("industry")
	statuses, _ := f.GetStringSlice("status")
	health, _ := f.GetStringSlice("health")
	from, _ := f.GetString("from")
	to, _ := f.GetString("to")
	sortKey, _ := f.GetString("sort")
	order, _ := f.GetString("order")
	limit, _ := f.GetInt("limit")

	fs := domain.FilterState{Search: search, Industries: industries}
	for _, s := range statuses {
		st, err := domain.ParseStatus(s)
		if err != nil {
			return ports.ListClientsInput{}, err
		}
		fs.Statuses = append(fs.Statuses, st)
	}
	for _, h := range health {
		hc, err := domain.ParseHealthCategory(h)
		if err != nil {
			return ports.ListClientsInput{}, err
		}
		fs.HealthCategories = append(fs.HealthCategories, hc)
	}
	if from != "" {
		t, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return ports.ListClientsInput{}, fmt.Errorf("%w: from %q", domain.ErrInvalidFilter, from)
		}
		fs.DateRange.Start = &t
	}
	if to != "" {
		t, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return ports.ListClientsInput{}, fmt.Errorf("%w: to %q", domain.ErrInvalidFilter, to)
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		fs.DateRange.End = &t
	}

	key, err := domain.ParseSortKey(sortKey)
	if err != nil {
		return ports.ListClientsInput{}, fmt.Errorf("%w: %q", err, sortKey)
	}
	dir, err := domain.ParseSortDirection(order)
	if err != nil {
		return ports.ListClientsInput{}, fmt.Errorf("%w: %q", err, order)
	}
	return ports.ListClientsInput{
		Filters: fs,
		Sort:    domain.SortConfig{Key: key, Direction: dir},
		Page:    1,
		Limit:   limit,
	}, nil
}

func buildReport(ctx context.Context, svc ports.ClientService, input ports.ListClientsInput) (*report, error) {
	kpis, err := svc.GetKPIs(ctx, input.Filters)
	if err != nil {
		return nil, fmt.Errorf("kpis: %w", err)
	}
	list, err := svc.ListClients(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	rows := make([]reportRow, len(list.Items))
	for i, s := range list.Items {
		rows[i] = reportRow{
			ID:       s.Client.ID,
			Name:     s.Client.Name,
			Industry: s.Client.Industry,
			Status:   string(s.Client.Status),
			Score:    s.HealthScore,
			Category: s.HealthCategory,
			Stored:   s.Client.HealthScore,
		}
	}
	return &report{KPIs: kpis, Clients: rows, Total: list.Total}, nil
}

func writeReport(out io.Writer, r *report) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Clients:\t%d\n", r.KPIs.TotalClients)
	_, _ = fmt.Fprintf(w, "Active subscriptions:\t%d\n", r.KPIs.ActiveSubscriptions)
	_, _ = fmt.Fprintf(w, "Revenue:\t%.2f\n", r.KPIs.TotalRevenue)
	_, _ = fmt.Fprintf(w, "Monthly jobs:\t%.0f\n", r.KPIs.MonthlyJobs)
	_, _ = fmt.Fprintf(w, "Average health:\t%.1f\n", r.KPIs.AverageHealthScore)
	if r.KPIs.Multiplier != 1 {
		_, _ = fmt.Fprintf(w, "Range multiplier:\t%.0f\n", r.KPIs.Multiplier)
	}
	_ = w.Flush()
	_, _ = fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tINDUSTRY\tSTATUS\tSCORE\tHEALTH\tSTORED")
	_, _ = fmt.Fprintln(w, "--\t----\t--------\t------\t-----\t------\t------")
	for _, row := range r.Clients {
		stored := fmt.Sprintf("%d", row.Stored)
		if engine.Classify(row.Stored) != row.Category {
			stored += " (stale)"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			row.ID, row.Name, row.Industry, row.Status, row.Score, row.Category, stored)
	}
	_ = w.Flush()
	if r.Total > len(r.Clients) {
		_, _ = fmt.Fprintf(out, "\n%d of %d clients shown\n", len(r.Clients), r.Total)
	}
}
