package cli

import (
	"context"
	"fmt"
	"log"
	"text/tabwriter"
)

const diaryUsage = "Usage: diary write [date] | list | show <date> | delete <date>"

// Diary dispatches the diary subcommands. Dates are YYYY-MM-DD; write
// defaults to today.
func (a *App) Diary(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, diaryUsage)
		return nil
	}

	var err error
	switch args[0] {
	case "write":
		date := nowFn().Format("2006-01-02")
		if len(args) > 1 {
			date = args[1]
		}
		err = a.diaryWrite(ctx, date)
	case "list":
		err = a.diaryList(ctx)
	case "show":
		if len(args) < 2 {
			fmt.Fprintln(a.out, diaryUsage)
			return nil
		}
		err = a.diaryShow(ctx, args[1])
	case "delete":
		if len(args) < 2 {
			fmt.Fprintln(a.out, diaryUsage)
			return nil
		}
		err = a.diaryDelete(ctx, args[1])
	default:
		fmt.Fprintln(a.out, diaryUsage)
		return nil
	}

	if err != nil {
		log.Printf("error: %v", err)
		a.reportAuth(err)
	}
	return err
}

func (a *App) diaryWrite(ctx context.Context, date string) error {
	title, err := getSimpleText(a.reader, "Title (optional)", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "How was your day?", a.out)
	if err != nil {
		return err
	}

	entry, err := a.diary.Save(ctx, date, title, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved entry for %s\n", entry.EntryDate)
	return nil
}

func (a *App) diaryList(ctx context.Context) error {
	entries, err := a.diary.List(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No diary entries yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTITLE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.EntryDate, e.Title)
	}
	return tw.Flush()
}

func (a *App) diaryShow(ctx context.Context, date string) error {
	e, err := a.diary.Get(ctx, date)
	if err != nil {
		return err
	}
	if e.Title != "" {
		fmt.Fprintf(a.out, "%s  %s\n\n", e.EntryDate, e.Title)
	} else {
		fmt.Fprintf(a.out, "%s\n\n", e.EntryDate)
	}
	fmt.Fprintln(a.out, e.Content)
	return nil
}

func (a *App) diaryDelete(ctx context.Context, date string) error {
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete the entry for %s?", date), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.diary.Delete(ctx, date); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted entry for %s\n", date)
	return nil
}
