package services

import (
	"fmt"
	"time"

	"rentledger/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

const reportMonthLayout = "2006-01"

var (
	reportHeaderStyle = props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center}
	reportCellStyle   = props.Text{Size: 8, Align: align.Center, Top: 1}
	reportTotalStyle  = props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2}
)

type ReportService struct {
	log logger.Logger
}

func NewReportService() *ReportService {
	return &ReportService{log: logger.New("reportService")}
}

// ReportFilename is utility-report-YYYY-MM.pdf, or utility-report-all.pdf
// when no month was requested.
func ReportFilename(month *time.Time) string {
	if month == nil {
		return "utility-report-all.pdf"
	}
	return fmt.Sprintf("utility-report-%s.pdf", models.NormalizeMonth(*month).Format(reportMonthLayout))
}

// UtilityReport renders one row per record. Records must have Room.Floor
// preloaded.
func (s *ReportService) UtilityReport(
	house *models.House,
	month *time.Time,
	utilities []*models.Utility,
) ([]byte, error) {
	log := s.log.Function("UtilityReport")

	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()
	m := maroto.New(cfg)

	period := "All months"
	if month != nil {
		period = models.NormalizeMonth(*month).Format(reportMonthLayout)
	}

	m.AddRow(10, text.NewCol(12, "Utility report: "+house.Name, props.Text{
		Style: fontstyle.Bold,
		Size:  14,
		Align: align.Center,
	}))
	m.AddRow(6, text.NewCol(12, house.Address+" | "+period, props.Text{Size: 9, Align: align.Center}))
	m.AddRow(4)

	m.AddRow(8, headerCols()...)

	total := decimal.Zero
	unpaid := decimal.Zero
	for _, utility := range utilities {
		m.AddRow(7, utilityCols(utility)...)
		total = total.Add(utility.TotalCost)
		if !utility.IsPaid {
			unpaid = unpaid.Add(utility.TotalCost)
		}
	}

	m.AddRow(4)
	m.AddRow(7, text.NewCol(12, "Total billed: "+total.StringFixed(2), reportTotalStyle))
	m.AddRow(7, text.NewCol(12, "Outstanding: "+unpaid.StringFixed(2), reportTotalStyle))

	doc, err := m.Generate()
	if err != nil {
		return nil, log.Err("failed to generate utility report", err, "houseID", house.ID)
	}

	return doc.GetBytes(), nil
}

func headerCols() []core.Col {
	headers := []struct {
		size  int
		label string
	}{
		{1, "Month"}, {1, "Floor"}, {2, "Room"}, {1, "Old"}, {1, "New"},
		{1, "Usage"}, {1, "Room cost"}, {2, "Water cost"}, {1, "Total"}, {1, "Paid"},
	}

	cols := make([]core.Col, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, text.NewCol(h.size, h.label, reportHeaderStyle))
	}
	return cols
}

func utilityCols(utility *models.Utility) []core.Col {
	roomName, floorName := "", ""
	if utility.Room != nil {
		roomName = utility.Room.Name
		if utility.Room.Floor != nil {
			floorName = FloorLabel(utility.Room.Floor)
		}
	}

	paid := "No"
	if utility.IsPaid {
		paid = "Yes"
	}

	return []core.Col{
		text.NewCol(1, utility.Month.Format(reportMonthLayout), reportCellStyle),
		text.NewCol(1, floorName, reportCellStyle),
		text.NewCol(2, roomName, reportCellStyle),
		text.NewCol(1, utility.OldWater.String(), reportCellStyle),
		text.NewCol(1, utility.NewWater.String(), reportCellStyle),
		text.NewCol(1, utility.WaterUsage().String(), reportCellStyle),
		text.NewCol(1, utility.RoomCost.StringFixed(2), reportCellStyle),
		text.NewCol(2, utility.WaterCost.StringFixed(2), reportCellStyle),
		text.NewCol(1, utility.TotalCost.StringFixed(2), reportCellStyle),
		text.NewCol(1, paid, reportCellStyle),
	}
}

// FloorLabel prefers the floor's name and falls back to its number.
func FloorLabel(floor *models.Floor) string {
	if floor.FloorName != nil && *floor.FloorName != "" {
		return *floor.FloorName
	}
	return fmt.Sprintf("Floor %d", floor.FloorNumber)
}
