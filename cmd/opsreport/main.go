package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/promovia/promovia-api/config"
	"github.com/promovia/promovia-api/initializers"
	"github.com/promovia/promovia-api/models"
)

type reportRow struct {
	ProjectName string
	Status      string
	Total       int64
	Flagged     int64
}

func main() {
	var (
		projectID   = flag.String("project", "", "restrict the report to a single project id")
		status      = flag.String("status", "", "restrict the report to one status (PENDING, APPROVED or REJECTED)")
		flaggedOnly = flag.Bool("flagged", false, "count only orders flagged for review")
		since       = flag.String("since", "", "count only orders captured on or after this date (YYYY-MM-DD)")
	)
	flag.Parse()

	if *status != "" && *status != models.OrderStatusPending && *status != models.OrderStatusApproved && *status != models.OrderStatusRejected {
		log.Fatalf("unknown status %q", *status)
	}

	initializers.LoadEnv()
	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initializers.ConnectToDB(cfg)

	rows, err := collectRows(*projectID, *status, *flaggedOnly, *since)
	if err != nil {
		log.Fatalf("Failed to collect capture counts: %v", err)
	}
	if len(rows) == 0 {
		log.Println("No captured orders match the given filters.")
		return
	}

	printReport(rows)
}

func collectRows(projectID, status string, flaggedOnly bool, since string) ([]reportRow, error) {
	query := initializers.DB.Model(&models.CapturedOrder{}).
		Select("COALESCE(projects.name, 'unassigned') AS project_name, captured_orders.status AS status, COUNT(*) AS total, SUM(captured_orders.is_flagged) AS flagged").
		Joins("LEFT JOIN projects ON projects.id = captured_orders.project_id").
		Group("project_name, captured_orders.status").
		Order("project_name, captured_orders.status")

	if projectID != "" {
		query = query.Where("captured_orders.project_id = ?", projectID)
	}
	if status != "" {
		query = query.Where("captured_orders.status = ?", status)
	}
	if flaggedOnly {
		query = query.Where("captured_orders.is_flagged = ?", true)
	}
	if since != "" {
		from, err := time.Parse("2006-01-02", since)
		if err != nil {
			return nil, err
		}
		query = query.Where("captured_orders.created_at >= ?", from)
	}

	var rows []reportRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func printReport(rows []reportRow) {
	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"Project", "Status", "Orders", "Flagged"})

	var total, flagged int64
	for _, row := range rows {
		table.Append([]string{
			row.ProjectName,
			row.Status,
			strconv.FormatInt(row.Total, 10),
			strconv.FormatInt(row.Flagged, 10),
		})
		total += row.Total
		flagged += row.Flagged
	}
	table.Render()

	log.Printf("captured orders total=%d flagged=%d", total, flagged)
}
