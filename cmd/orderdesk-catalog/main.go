// Command orderdesk-catalog prints catalog search results as a table, the
// same ranking the order form's product search uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/orderdesk/catalog"
	"github.com/junaidrashid-git/orderdesk/config"
	"github.com/junaidrashid-git/orderdesk/database"
	"github.com/junaidrashid-git/orderdesk/logging"
)

func main() {
	query := flag.String("q", "", "search text; empty lists the catalog")
	page := flag.Int("page", 1, "page number")
	limit := flag.Int("limit", 0, "page size (default depends on whether a query is given)")
	flag.Parse()

	cfg := config.Load()
	logger, err := logging.New(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DB)
	if err != nil {
		logger.Fatal("❌ DB connection failed", zap.Error(err))
	}

	result, err := catalog.NewStore(db).Search(context.Background(), *query, *page, *limit)
	if err != nil {
		logger.Fatal("❌ catalog search failed", zap.Error(err))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Code", "Name", "Price", "Stock", "Addable")
	for _, p := range result.Products {
		stock := "-"
		if p.Stock != nil {
			stock = strconv.Itoa(*p.Stock)
		}
		if err := table.Append(p.ID, p.Code, p.Name, strconv.FormatFloat(p.Price, 'f', 2, 64), stock, strconv.FormatBool(p.Addable())); err != nil {
			logger.Fatal("❌ render row", zap.Error(err))
		}
	}
	if err := table.Render(); err != nil {
		logger.Fatal("❌ render table", zap.Error(err))
	}
	fmt.Printf("page %d, %d of %d products\n", result.Page, len(result.Products), result.Total)
}
