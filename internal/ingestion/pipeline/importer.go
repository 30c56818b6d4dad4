package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/evalhub/evalcycle-backend/internal/data/repos"
	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/ingestion/aggregate"
	"github.com/evalhub/evalcycle-backend/internal/ingestion/criteria"
	"github.com/evalhub/evalcycle-backend/internal/ingestion/sheet"
	apperrors "github.com/evalhub/evalcycle-backend/internal/pkg/errors"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

var (
	yearPattern   = regexp.MustCompile(`\d{4}`)
	numberPattern = regexp.MustCompile(`\d+`)
)

// Importer turns historical evaluation workbooks into store records. One
// Importer is safe to reuse across files; each call reads a single workbook.
type Importer struct {
	db      *gorm.DB
	log     *logger.Logger
	repos   *repos.Set
	mapping criteria.Mapping

	// criterion names a self-assessment card may carry after remapping
	catalogue map[string]bool
}

func NewImporter(db *gorm.DB, baseLog *logger.Logger, set *repos.Set, mapping criteria.Mapping) *Importer {
	catalogue := make(map[string]bool)
	for _, c := range criteria.Catalogue() {
		catalogue[c.Name] = true
	}
	return &Importer{
		db:        db,
		log:       baseLog.With("service", "Importer"),
		repos:     set,
		mapping:   mapping,
		catalogue: catalogue,
	}
}

// ImportAll runs every workbook in order. A failed file is recorded on the
// outcome and never stops the remaining files.
func (im *Importer) ImportAll(ctx context.Context, paths []string) (*RunOutcome, error) {
	out := &RunOutcome{}
	for _, path := range paths {
		outcome, err := im.ImportFile(ctx, path)
		if err != nil {
			im.log.Error("workbook import failed", "file", filepath.Base(path), "error", err)
			out.FilesFailed++
			if outcome == nil {
				outcome = &FileOutcome{
					File:       filepath.Base(path),
					Skipped:    true,
					SkipReason: err.Error(),
				}
			}
		}
		out.Files = append(out.Files, outcome)
	}
	return out, nil
}

func (im *Importer) ImportFile(ctx context.Context, path string) (*FileOutcome, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()
	return im.ImportWorkbook(ctx, f, filepath.Base(path))
}

// ImportWorkbook ingests one open workbook: profile, cycle, self assessment,
// 360 groups, reference nominations, in that order. Unit failures inside the
// later phases are logged and counted; only profile or cycle reconciliation
// failures abort the file.
func (im *Importer) ImportWorkbook(ctx context.Context, f *excelize.File, name string) (*FileOutcome, error) {
	outcome := &FileOutcome{File: name}

	run, err := im.repos.ImportRuns.Create(ctx, nil, &types.ImportRun{FileName: name})
	if err != nil {
		// The audit trail is best effort; the import itself still runs.
		im.log.Warn("could not record import run", "file", name, "error", err)
		run = nil
	}

	profile, err := im.extractProfile(f)
	if err != nil {
		outcome.Skipped = true
		outcome.SkipReason = err.Error()
		im.log.Warn("workbook skipped", "file", name, "reason", err.Error())
		im.finishRun(ctx, run, outcome, types.ImportRunStatusSkipped)
		return outcome, nil
	}

	collab, err := im.repos.Collaborators.UpsertProfile(ctx, nil, profile.Email, profile.FullName, profile.Unit)
	if err != nil {
		im.finishRun(ctx, run, outcome, types.ImportRunStatusFailed)
		return outcome, fmt.Errorf("reconcile collaborator: %w", err)
	}

	cycle, err := im.reconcileCycle(ctx, profile.CycleName)
	if err != nil {
		im.finishRun(ctx, run, outcome, types.ImportRunStatusFailed)
		return outcome, fmt.Errorf("reconcile cycle %q: %w", profile.CycleName, err)
	}
	outcome.Cycle = cycle.Name

	if err := im.repos.Memberships.Ensure(ctx, nil, collab.ID, cycle.ID); err != nil {
		im.finishRun(ctx, run, outcome, types.ImportRunStatusFailed)
		return outcome, fmt.Errorf("ensure membership: %w", err)
	}

	im.importSelfAssessment(ctx, f, collab, cycle, outcome)
	im.importPeerAssessments(ctx, f, collab, cycle, outcome)
	im.importNominations(ctx, f, collab, cycle, outcome)

	status := types.ImportRunStatusDone
	if outcome.Partial() {
		status = types.ImportRunStatusPartial
	}
	im.finishRun(ctx, run, outcome, status)

	im.log.Info("workbook imported",
		"file", name,
		"cycle", cycle.Name,
		"self_cards", outcome.SelfCards,
		"peer_groups", outcome.PeerGroups,
		"nominations", outcome.Nominations,
		"status", status)
	return outcome, nil
}

type workbookProfile struct {
	Email     string
	FullName  string
	Unit      string
	CycleName string
}

// extractProfile reads the first data row of the profile sheet. Extra rows
// are ignored: one workbook describes one collaborator.
func (im *Importer) extractProfile(f *excelize.File) (*workbookProfile, error) {
	rows := sheet.ExtractRows(f, SheetProfile)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q has no data rows", apperrors.ErrMissingProfile, SheetProfile)
	}
	row := rows[0]

	email, _ := sheet.ResolveString(row, sheet.HeaderContains(colEmail))
	fullName, _ := sheet.ResolveString(row, sheet.HeaderContains(colName))
	unit, _ := sheet.ResolveString(row, sheet.HeaderContains(colUnit))
	if email == "" || fullName == "" || unit == "" {
		return nil, fmt.Errorf("%w: need email, name and unit", apperrors.ErrMissingProfile)
	}

	cycleName, _ := sheet.ResolveString(row, sheet.HeaderContains(colCycle))
	if cycleName == "" {
		return nil, fmt.Errorf("%w: profile row names no cycle", apperrors.ErrMissingCycle)
	}

	return &workbookProfile{
		Email:     email,
		FullName:  fullName,
		Unit:      unit,
		CycleName: cycleName,
	}, nil
}

// reconcileCycle finds or creates the named cycle. The schedule is derived
// from the first four-digit year in the name; imported cycles are always
// historical and land CLOSED with a full calendar year as their bounds.
func (im *Importer) reconcileCycle(ctx context.Context, name string) (*types.EvaluationCycle, error) {
	year := defaultCycleYear
	if m := yearPattern.FindString(name); m != "" {
		if y, err := strconv.Atoi(m); err == nil {
			year = y
		}
	}

	return im.repos.Cycles.FindOrCreate(ctx, nil, &types.EvaluationCycle{
		Name:           name,
		StartDate:      time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		Status:         types.CycleStatusClosed,
		PhaseDurations: datatypes.JSON(phaseDurationsJSON),
	})
}

// importSelfAssessment builds all valid cards first, then lands the SELF
// assessment and its cards in one transaction so a write failure leaves no
// headless assessment behind.
func (im *Importer) importSelfAssessment(ctx context.Context, f *excelize.File, collab *types.Collaborator, cycle *types.EvaluationCycle, outcome *FileOutcome) {
	rows := sheet.ExtractRows(f, SheetSelf)
	if len(rows) == 0 {
		return
	}

	var cards []*types.SelfAssessmentCard
	for _, row := range rows {
		legacy, ok := sheet.ResolveString(row, sheet.HeaderContains(colCriterion))
		if !ok || legacy == "" {
			outcome.SelfRowsSkipped++
			im.log.Warn("self row has no criterion", "file", outcome.File)
			continue
		}
		current, ok := im.mapping.Remap(legacy)
		if !ok || !im.catalogue[current] {
			outcome.SelfRowsSkipped++
			im.log.Warn("self row criterion not in catalogue", "file", outcome.File, "criterion", legacy)
			continue
		}
		scoreCell, _ := sheet.Resolve(row, sheet.HeaderContains(colSelfScore))
		score, ok := scoreCell.Int()
		if !ok {
			outcome.SelfRowsSkipped++
			im.log.Warn("self row score is not a whole number", "file", outcome.File, "criterion", current)
			continue
		}
		justification, _ := sheet.ResolveString(row, sheet.HeaderContains(colJustification))
		cards = append(cards, &types.SelfAssessmentCard{
			CriterionName: current,
			Score:         score,
			Justification: justification,
		})
	}
	if len(cards) == 0 {
		return
	}

	err := im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assessment, err := im.repos.Assessments.Create(ctx, tx, &types.Assessment{
			CycleID:   cycle.ID,
			SubjectID: collab.ID,
			AuthorID:  collab.ID,
			Kind:      types.AssessmentKindSelf,
			Status:    types.AssessmentStatusCompleted,
		})
		if err != nil {
			return err
		}
		for _, card := range cards {
			card.AssessmentID = assessment.ID
		}
		_, err = im.repos.Assessments.CreateSelfCards(ctx, tx, cards)
		return err
	})
	if err != nil {
		im.log.Error("self assessment transaction failed", "file", outcome.File, "error", err)
		outcome.Errors = append(outcome.Errors, fmt.Sprintf("self assessment: %v", err))
		return
	}
	outcome.SelfCards = len(cards)
}

// importPeerAssessments groups the 360 sheet by evaluated collaborator and
// lands one PEER assessment plus summary per group. A failed group is counted
// and the remaining groups still run.
func (im *Importer) importPeerAssessments(ctx context.Context, f *excelize.File, collab *types.Collaborator, cycle *types.EvaluationCycle, outcome *FileOutcome) {
	rows := sheet.ExtractRows(f, SheetPeer)
	if len(rows) == 0 {
		return
	}

	groups := aggregate.GroupRows(rows, func(r sheet.Row) (string, bool) {
		return sheet.ResolveString(r, sheet.HeaderContains(colEvaluatedEmail))
	})
	if dropped := len(groups[aggregate.UnknownKey]); dropped > 0 {
		outcome.PeerRowsSkipped += dropped
		im.log.Warn("360 rows without an evaluated email dropped", "file", outcome.File, "rows", dropped)
		delete(groups, aggregate.UnknownKey)
	}

	emails := make([]string, 0, len(groups))
	for email := range groups {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	for _, email := range emails {
		if err := im.importPeerGroup(ctx, collab, cycle, email, groups[email], outcome); err != nil {
			outcome.PeerGroupsFailed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("peer group %s: %v", email, err))
			im.log.Error("peer group failed", "file", outcome.File, "evaluated_email", email, "error", err)
			continue
		}
		outcome.PeerGroups++
	}
}

func (im *Importer) importPeerGroup(ctx context.Context, collab *types.Collaborator, cycle *types.EvaluationCycle, email string, rows []sheet.Row, outcome *FileOutcome) error {
	evaluated, err := im.repos.Collaborators.EnsurePlaceholder(ctx, nil, email, placeholderFullName, placeholderUnit)
	if err != nil {
		return fmt.Errorf("ensure evaluated collaborator: %w", err)
	}
	if err := im.repos.Memberships.Ensure(ctx, nil, evaluated.ID, cycle.ID); err != nil {
		return fmt.Errorf("ensure evaluated membership: %w", err)
	}

	var scores []float64
	var strengths, improvements, workAgain []string
	for _, row := range rows {
		if err := im.recordWorkHistory(ctx, row, collab, evaluated, cycle, outcome); err != nil {
			return err
		}

		if cell, ok := sheet.Resolve(row, sheet.HeaderContains(colOverallScore)); ok {
			if v, ok := cell.Float(); ok {
				scores = append(scores, v)
			}
		}
		if s, ok := sheet.ResolveString(row, sheet.HeaderContains(colStrengths)); ok {
			strengths = append(strengths, s)
		}
		if s, ok := sheet.ResolveString(row, sheet.HeaderContains(colToImprove)); ok {
			improvements = append(improvements, s)
		}
		if s, ok := sheet.ResolveString(row, sheet.HeaderContains(colWorkAgain)); ok {
			workAgain = append(workAgain, s)
		}
	}

	return im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assessment, err := im.repos.Assessments.Create(ctx, tx, &types.Assessment{
			CycleID:   cycle.ID,
			SubjectID: evaluated.ID,
			AuthorID:  collab.ID,
			Kind:      types.AssessmentKindPeer,
			Status:    types.AssessmentStatusCompleted,
		})
		if err != nil {
			return err
		}
		_, err = im.repos.Assessments.CreatePeerSummary(ctx, tx, &types.PeerAssessmentSummary{
			AssessmentID:        assessment.ID,
			OverallScore:        aggregate.Mean2(scores),
			Strengths:           aggregate.JoinNonEmpty(strengths, emptyTextFallback),
			AreasToImprove:      aggregate.JoinNonEmpty(improvements, emptyTextFallback),
			WouldWorkAgainNotes: aggregate.JoinNonEmpty(workAgain, emptyTextFallback),
		})
		return err
	})
}

// recordWorkHistory lands the project, both allocations and the directed
// pairing a 360 row implies. A row with no project name contributes nothing
// to work history but its scores and comments still count.
func (im *Importer) recordWorkHistory(ctx context.Context, row sheet.Row, collab, evaluated *types.Collaborator, cycle *types.EvaluationCycle, outcome *FileOutcome) error {
	projectName, ok := sheet.ResolveString(row, sheet.HeaderContains(colProject))
	if !ok || projectName == "" {
		outcome.PeerRowsSkipped++
		im.log.Warn("360 row has no project", "file", outcome.File)
		return nil
	}

	project, err := im.repos.Projects.FindOrCreate(ctx, nil, projectName)
	if err != nil {
		return fmt.Errorf("find or create project %q: %w", projectName, err)
	}

	for _, who := range []*types.Collaborator{collab, evaluated} {
		if _, _, err := im.repos.Allocations.CreateIfAbsent(ctx, nil, who.ID, project.ID, cycle.StartDate, cycle.EndDate); err != nil {
			return fmt.Errorf("allocate to project %q: %w", projectName, err)
		}
	}

	days := 0
	if period, ok := sheet.ResolveString(row, sheet.HeaderContains(colPeriod)); ok {
		if m := numberPattern.FindString(period); m != "" {
			days, _ = strconv.Atoi(m)
		}
	}
	if err := im.repos.Pairings.Upsert(ctx, nil, collab.ID, evaluated.ID, cycle.ID, project.ID, days); err != nil {
		return fmt.Errorf("upsert pairing: %w", err)
	}
	return nil
}

// importNominations appends one reference nomination per usable row of the
// references sheet. Rows without a nominee email are skipped; a write failure
// only loses that row.
func (im *Importer) importNominations(ctx context.Context, f *excelize.File, collab *types.Collaborator, cycle *types.EvaluationCycle, outcome *FileOutcome) {
	rows := sheet.ExtractRows(f, SheetReferences)
	for _, row := range rows {
		email, ok := sheet.ResolveString(row, sheet.HeaderContains(colReferenceEmail))
		if !ok || email == "" {
			outcome.NominationErrors++
			im.log.Warn("reference row has no nominee email", "file", outcome.File)
			continue
		}
		nominee, err := im.repos.Collaborators.EnsurePlaceholder(ctx, nil, email, placeholderFullName, placeholderUnit)
		if err != nil {
			outcome.NominationErrors++
			im.log.Error("could not ensure nominee", "file", outcome.File, "error", err)
			continue
		}
		justification, _ := sheet.ResolveString(row, sheet.HeaderContains(colJustification))
		if _, err := im.repos.Nominations.Create(ctx, nil, &types.ReferenceNomination{
			CycleID:       cycle.ID,
			NominatorID:   collab.ID,
			NomineeID:     nominee.ID,
			Justification: justification,
		}); err != nil {
			outcome.NominationErrors++
			im.log.Error("could not create nomination", "file", outcome.File, "error", err)
			continue
		}
		outcome.Nominations++
	}
}

func (im *Importer) finishRun(ctx context.Context, run *types.ImportRun, outcome *FileOutcome, status string) {
	if run == nil {
		return
	}
	run.Status = status
	run.SelfCardsCreated = outcome.SelfCards
	run.PeerGroupsCreated = outcome.PeerGroups
	run.PeerGroupFailures = outcome.PeerGroupsFailed
	run.NominationsCreated = outcome.Nominations
	run.NominationFailures = outcome.NominationErrors
	if diag, err := json.Marshal(outcome); err == nil {
		run.Diagnostics = datatypes.JSON(diag)
	}
	if err := im.repos.ImportRuns.Finish(ctx, nil, run); err != nil {
		im.log.Warn("could not finish import run", "file", outcome.File, "error", err)
	}
}
