package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "arbitrack/internal/api/client"
	domain "arbitrack/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printScoresTable(scores []domain.ScoreRow) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ASIN\tTITLE\tMKT\tAMAZON\tRETAIL\tMARGIN\tROI%%\tBSR\tSELLERS\n")
	for i := range scores {
		s := &scores[i]
		retail := "-"
		if s.RetailPrice != nil {
			retail = s.RetailPrice.StringFixed(2)
		}
		bsr := "-"
		if s.BSR != nil {
			bsr = fmt.Sprintf("%d", *s.BSR)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			s.ASIN,
			truncate(s.Title, 40),
			s.Marketplace,
			s.AmazonPrice.StringFixed(2),
			retail,
			s.Margin.StringFixed(2),
			s.ROIPercent.StringFixed(1),
			bsr,
			s.SellersCount,
		)
	}
	return tw.finish()
}

func printAlertTable(alerts []domain.Alert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tDESCRIPTION\tACTIVE\tLAST RUN\n")
	for i := range alerts {
		a := &alerts[i]
		lastRun := "-"
		if a.LastRunAt != nil {
			lastRun = a.LastRunAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%v\t%s\n",
			a.ID,
			a.Name,
			truncate(a.Description, 40),
			a.Active,
			lastRun,
		)
	}
	return tw.finish()
}

func printAlertDetail(a *domain.Alert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", a.ID)
	tw.writef("Name:\t%s\n", a.Name)
	tw.writef("Description:\t%s\n", a.Description)
	tw.writef("Active:\t%v\n", a.Active)
	if a.Filters.ROIMin != nil {
		tw.writef("ROI min:\t%s\n", a.Filters.ROIMin.StringFixed(1))
	}
	if a.Filters.ROIMax != nil {
		tw.writef("ROI max:\t%s\n", a.Filters.ROIMax.StringFixed(1))
	}
	if a.Filters.MarginMin != nil {
		tw.writef("Margin min:\t%s\n", a.Filters.MarginMin.StringFixed(2))
	}
	if a.Filters.MarginMax != nil {
		tw.writef("Margin max:\t%s\n", a.Filters.MarginMax.StringFixed(2))
	}
	if a.Filters.BSRMax != nil {
		tw.writef("BSR max:\t%d\n", *a.Filters.BSRMax)
	}
	if a.Filters.SellersCountMax != nil {
		tw.writef("Sellers max:\t%d\n", *a.Filters.SellersCountMax)
	}
	if a.Filters.BuyboxStable != nil {
		tw.writef("Buybox stable:\t%v\n", *a.Filters.BuyboxStable)
	}
	if a.Filters.Marketplace != nil {
		tw.writef("Marketplace:\t%s\n", *a.Filters.Marketplace)
	}
	if a.LastRunAt != nil {
		tw.writef("Last run:\t%s\n", a.LastRunAt.Format("2006-01-02 15:04:05"))
	}
	return tw.finish()
}

func printStoreTable(stores []domain.RetailStore) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tURL\tACTIVE\n")
	for i := range stores {
		tw.writef("%s\t%s\t%s\t%v\n",
			stores[i].ID,
			stores[i].Name,
			truncate(stores[i].URL, 50),
			stores[i].Active,
		)
	}
	return tw.finish()
}

func printProductTable(products []domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ASIN\tTITLE\tBRAND\tCATEGORY\n")
	for i := range products {
		tw.writef("%s\t%s\t%s\t%s\n",
			products[i].ASIN,
			truncate(products[i].Title, 40),
			products[i].Brand,
			products[i].Category,
		)
	}
	return tw.finish()
}

func printProductDetail(p *domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("ASIN:\t%s\n", p.ASIN)
	tw.writef("Title:\t%s\n", p.Title)
	tw.writef("Brand:\t%s\n", p.Brand)
	tw.writef("Category:\t%s\n", p.Category)
	tw.writef("URL:\t%s\n", p.ImageURL)
	return tw.finish()
}

func printJobsTable(jobs []domain.Job) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTYPE\tSTATUS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range jobs {
		j := &jobs[i]
		started := "-"
		if j.StartedAt != nil {
			started = j.StartedAt.Format("2006-01-02 15:04:05")
		}
		completed := "-"
		if j.CompletedAt != nil {
			completed = j.CompletedAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID,
			j.Type,
			j.Status,
			started,
			completed,
			truncate(j.Error, 40),
		)
	}
	return tw.finish()
}

func printSettingsTable(settings []domain.Setting) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("KEY\tVALUE\tUPDATED\n")
	for i := range settings {
		tw.writef("%s\t%s\t%s\n",
			settings[i].Key,
			truncate(string(settings[i].Value), 60),
			settings[i].UpdatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printCalcResult(r *apiclient.CalcResult) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Landed cost:\t%s\n", r.LandedCost.StringFixed(2))
	tw.writef("Margin:\t%s\n", r.Margin.StringFixed(2))
	tw.writef("ROI:\t%s%%\n", r.ROIPercent.StringFixed(1))
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
