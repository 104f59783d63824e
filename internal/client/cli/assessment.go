package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/scoring"
)

// ParseAnswers reads nine answers given either as one token ("012301230")
// or separated by commas or spaces ("0,1,2,3,0,1,2,3,0").
func ParseAnswers(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 1 && len(fields[0]) == scoring.ItemCount {
		fields = strings.Split(fields[0], "")
	}

	answers := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", common.ErrInvalidInput, f)
		}
		answers = append(answers, v)
	}

	if err := scoring.Validate(answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (a *App) askAnswer(i int) (int, error) {
	for {
		text, err := getSimpleText(a.reader, fmt.Sprintf("%d/%d. %s", i+1, scoring.ItemCount, questions[i]), a.out)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(text)
		if err == nil && v >= scoring.MinAnswer && v <= scoring.MaxAnswer {
			return v, nil
		}
		fmt.Fprintf(a.out, "Please enter a number from %d to %d.\n", scoring.MinAnswer, scoring.MaxAnswer)
	}
}

// Assess walks the user through the questionnaire, stores the result and
// prints it.
func (a *App) Assess(ctx context.Context) error {
	fmt.Fprintln(a.out, instructions)
	for i, o := range options {
		fmt.Fprintf(a.out, "  %d  %s\n", i, o)
	}

	answers := make([]int, 0, scoring.ItemCount)
	for i := range questions {
		v, err := a.askAnswer(i)
		if err != nil {
			return err
		}
		answers = append(answers, v)
	}

	rec, err := a.records.SubmitAssessment(ctx, answers)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printResult(a.out, rec)
	return nil
}

// printResult shows the score and, when warranted, the follow-up notices.
func printResult(w io.Writer, rec *models.Record) {
	fmt.Fprintf(w, "\nYour score: %d/%d (%s)\n", rec.Total, scoring.MaxTotal, rec.Severity)

	if scoring.ShouldEscalate(rec.Total, rec.Answers) {
		fmt.Fprintf(w, "\n%s\n%s\n", crisisTitle, escalationText)
		printCrisis(w)
		return
	}
	if scoring.ShouldShowNudge(rec.Total) {
		fmt.Fprintf(w, "\n%s\n%s\n", nudgeTitle, nudgeText)
	}
}

func printCrisis(w io.Writer) {
	fmt.Fprintln(w, crisisText)
	for _, c := range crisisContacts {
		fmt.Fprintf(w, "  %s\n", c)
	}
}

// History lists stored results, newest first.
func (a *App) History(ctx context.Context) error {
	printHistory(a.out, a.records.GetHistory(ctx))
	return nil
}

func printHistory(w io.Writer, records []models.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No assessments yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSCORE\tSEVERITY")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Total, r.Severity)
	}
	_ = tw.Flush()
}
