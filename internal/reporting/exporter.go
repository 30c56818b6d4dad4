package reporting

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/evalhub/evalcycle-backend/internal/data/repos"
	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	apperrors "github.com/evalhub/evalcycle-backend/internal/pkg/errors"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

const MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	sheetSummary = "Cycle Summary"
	sheetDetail  = "Per-Collaborator Detail"
)

// Exporter writes a cycle's state back out as a workbook: one summary sheet
// with cycle-level counts and one detail sheet with a row per member.
type Exporter struct {
	db    *gorm.DB
	log   *logger.Logger
	repos *repos.Set
}

func NewExporter(db *gorm.DB, baseLog *logger.Logger, set *repos.Set) *Exporter {
	return &Exporter{db: db, log: baseLog.With("service", "Exporter"), repos: set}
}

// BuildCycleReport assembles the report workbook for one cycle and returns it
// with its suggested file name. The caller owns closing and saving the file.
func (ex *Exporter) BuildCycleReport(ctx context.Context, cycleID uuid.UUID) (*excelize.File, string, error) {
	cycle, err := ex.repos.Cycles.GetByID(ctx, nil, cycleID)
	if err != nil {
		return nil, "", fmt.Errorf("load cycle: %w", err)
	}
	if cycle == nil {
		return nil, "", fmt.Errorf("cycle %s: %w", cycleID, apperrors.ErrNotFound)
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetSummary)
	if _, err := f.NewSheet(sheetDetail); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("create detail sheet: %w", err)
	}

	if err := ex.writeSummary(ctx, f, cycle); err != nil {
		f.Close()
		return nil, "", err
	}
	if err := ex.writeDetail(ctx, f, cycle); err != nil {
		f.Close()
		return nil, "", err
	}

	name := fmt.Sprintf("report_cycle_%s.xlsx", cycle.ID)
	ex.log.Info("cycle report built", "cycle", cycle.Name, "file", name)
	return f, name, nil
}

func (ex *Exporter) writeSummary(ctx context.Context, f *excelize.File, cycle *types.EvaluationCycle) error {
	members, err := ex.repos.Memberships.CountByCycle(ctx, nil, cycle.ID)
	if err != nil {
		return fmt.Errorf("count members: %w", err)
	}
	total, completed, err := ex.repos.Assessments.CountByCycle(ctx, nil, cycle.ID)
	if err != nil {
		return fmt.Errorf("count assessments: %w", err)
	}
	nominations, err := ex.repos.Nominations.CountByCycle(ctx, nil, cycle.ID)
	if err != nil {
		return fmt.Errorf("count nominations: %w", err)
	}

	completion := 0.0
	if total > 0 {
		completion = float64(completed) / float64(total)
	}

	rows := [][]interface{}{
		{"Cycle", cycle.Name},
		{"Status", cycle.Status},
		{"Start Date", cycle.StartDate.Format("2006-01-02")},
		{"End Date", cycle.EndDate.Format("2006-01-02")},
		{"Members", members},
		{"Assessments", total},
		{"Completed Assessments", completed},
		{"Completion Rate", fmt.Sprintf("%.0f%%", completion*100)},
		{"Reference Nominations", nominations},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	return nil
}

func (ex *Exporter) writeDetail(ctx context.Context, f *excelize.File, cycle *types.EvaluationCycle) error {
	memberships, err := ex.repos.Memberships.ListByCycle(ctx, nil, cycle.ID)
	if err != nil {
		return fmt.Errorf("list members: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.CollaboratorID)
	}
	collabs, err := ex.repos.Collaborators.GetByIDs(ctx, nil, ids)
	if err != nil {
		return fmt.Errorf("load collaborators: %w", err)
	}
	sort.Slice(collabs, func(i, j int) bool { return collabs[i].FullName < collabs[j].FullName })

	scores, err := ex.repos.Equalizations.ListByCycle(ctx, nil, cycle.ID)
	if err != nil {
		return fmt.Errorf("load equalization scores: %w", err)
	}
	scoreByCollab := make(map[uuid.UUID]*types.EqualizationScore, len(scores))
	for _, s := range scores {
		scoreByCollab[s.CollaboratorID] = s
	}

	header := []interface{}{"Name", "Email", "Unit", "Final Score", "Justification"}
	if err := f.SetSheetRow(sheetDetail, "A1", &header); err != nil {
		return fmt.Errorf("write detail header: %w", err)
	}

	for i, c := range collabs {
		row := []interface{}{c.FullName, c.Email, c.Unit, "", ""}
		if s, ok := scoreByCollab[c.ID]; ok {
			row[3] = s.FinalScore
			row[4] = s.Justification
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetDetail, cell, &row); err != nil {
			return fmt.Errorf("write detail row: %w", err)
		}
	}
	return nil
}
