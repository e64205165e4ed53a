package ports

import "github.com/aalvaropc/euclid/internal/domain"

// ReportStore persists verification reports for later inspection.
type ReportStore interface {
	SaveReport(report domain.Report) (id string, err error)
}

// ReportReader reads back saved reports.
type ReportReader interface {
	ListReports() ([]domain.ReportRef, error)
	// LoadReport returns the raw JSON artifact for id.
	LoadReport(id string) ([]byte, error)
}
