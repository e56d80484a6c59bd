package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/VorteXproCR/Expense-Tracker/pkg/apiclient"
	"go.uber.org/zap"
)

const usage = `usage: expensectl [-base-url URL] <command> [flags]

commands:
  add     -amount 12.50 -category Food [-description TEXT] [-date YYYY-MM-DD]
  list    [-category NAME] [-sort date_asc|date_desc]
  delete  -id N
  health
`

func main() {
	baseURL := flag.String("base-url", "http://localhost:3000", "API base URL")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := apiclient.New(apiclient.Config{BaseURL: *baseURL}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch flag.Arg(0) {
	case "add":
		err = runAdd(ctx, client, flag.Args()[1:])
	case "list":
		err = runList(ctx, client, flag.Args()[1:])
	case "delete":
		err = runDelete(ctx, client, flag.Args()[1:])
	case "health":
		err = runHealth(ctx, client)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runAdd(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	amount := fs.Float64("amount", 0, "expense amount, decimal")
	category := fs.String("category", "", "expense category")
	description := fs.String("description", "", "optional description")
	date := fs.String("date", time.Now().Format("2006-01-02"), "expense date, YYYY-MM-DD")
	fs.Parse(args)

	result, err := client.CreateExpense(ctx, apiclient.CreateExpenseRequest{
		Amount:      *amount,
		Category:    *category,
		Description: *description,
		Date:        *date,
	})
	if err != nil {
		return err
	}

	if result.Replayed {
		fmt.Printf("already recorded: #%d %s %.2f on %s\n",
			result.Expense.ID, result.Expense.Category,
			float64(result.Expense.Amount)/100, result.Expense.Date)
		return nil
	}

	fmt.Printf("recorded: #%d %s %.2f on %s\n",
		result.Expense.ID, result.Expense.Category,
		float64(result.Expense.Amount)/100, result.Expense.Date)
	return nil
}

func runList(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	category := fs.String("category", "", "filter by category, All for everything")
	sort := fs.String("sort", "", "date_asc or date_desc")
	fs.Parse(args)

	expenses, total, err := client.ListExpenses(ctx, *category, *sort)
	if err != nil {
		return err
	}

	for _, e := range expenses {
		line := fmt.Sprintf("#%d  %s  %10.2f  %s", e.ID, e.Date, float64(e.Amount)/100, e.Category)
		if e.Description != "" {
			line += "  " + e.Description
		}
		fmt.Println(line)
	}

	fmt.Printf("total: %.2f (%d expenses)\n", total, len(expenses))
	return nil
}

func runDelete(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "expense id")
	fs.Parse(args)

	if err := client.DeleteExpense(ctx, *id); err != nil {
		return err
	}

	fmt.Printf("deleted: #%d\n", *id)
	return nil
}

func runHealth(ctx context.Context, client *apiclient.Client) error {
	if err := client.Health(ctx); err != nil {
		return err
	}

	fmt.Println("ok")
	return nil
}
