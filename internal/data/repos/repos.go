package repos

import (
	"gorm.io/gorm"

	"github.com/evalhub/evalcycle-backend/internal/data/repos/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

type CollaboratorRepo = review.CollaboratorRepo
type CycleRepo = review.CycleRepo
type MembershipRepo = review.MembershipRepo
type ProjectRepo = review.ProjectRepo
type AllocationRepo = review.AllocationRepo
type PairingRepo = review.PairingRepo
type CriterionRepo = review.CriterionRepo
type AssessmentRepo = review.AssessmentRepo
type NominationRepo = review.NominationRepo
type ImportRunRepo = review.ImportRunRepo
type EqualizationRepo = review.EqualizationRepo

func NewCollaboratorRepo(db *gorm.DB, baseLog *logger.Logger) CollaboratorRepo {
	return review.NewCollaboratorRepo(db, baseLog)
}
func NewCycleRepo(db *gorm.DB, baseLog *logger.Logger) CycleRepo {
	return review.NewCycleRepo(db, baseLog)
}
func NewMembershipRepo(db *gorm.DB, baseLog *logger.Logger) MembershipRepo {
	return review.NewMembershipRepo(db, baseLog)
}
func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return review.NewProjectRepo(db, baseLog)
}
func NewAllocationRepo(db *gorm.DB, baseLog *logger.Logger) AllocationRepo {
	return review.NewAllocationRepo(db, baseLog)
}
func NewPairingRepo(db *gorm.DB, baseLog *logger.Logger) PairingRepo {
	return review.NewPairingRepo(db, baseLog)
}
func NewCriterionRepo(db *gorm.DB, baseLog *logger.Logger) CriterionRepo {
	return review.NewCriterionRepo(db, baseLog)
}
func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return review.NewAssessmentRepo(db, baseLog)
}
func NewNominationRepo(db *gorm.DB, baseLog *logger.Logger) NominationRepo {
	return review.NewNominationRepo(db, baseLog)
}
func NewImportRunRepo(db *gorm.DB, baseLog *logger.Logger) ImportRunRepo {
	return review.NewImportRunRepo(db, baseLog)
}
func NewEqualizationRepo(db *gorm.DB, baseLog *logger.Logger) EqualizationRepo {
	return review.NewEqualizationRepo(db, baseLog)
}

// Set bundles every repo; services that touch most of the store take one Set
// instead of a dozen constructor arguments.
type Set struct {
	Collaborators CollaboratorRepo
	Cycles        CycleRepo
	Memberships   MembershipRepo
	Projects      ProjectRepo
	Allocations   AllocationRepo
	Pairings      PairingRepo
	Criteria      CriterionRepo
	Assessments   AssessmentRepo
	Nominations   NominationRepo
	ImportRuns    ImportRunRepo
	Equalizations EqualizationRepo
}

func NewSet(db *gorm.DB, baseLog *logger.Logger) *Set {
	return &Set{
		Collaborators: NewCollaboratorRepo(db, baseLog),
		Cycles:        NewCycleRepo(db, baseLog),
		Memberships:   NewMembershipRepo(db, baseLog),
		Projects:      NewProjectRepo(db, baseLog),
		Allocations:   NewAllocationRepo(db, baseLog),
		Pairings:      NewPairingRepo(db, baseLog),
		Criteria:      NewCriterionRepo(db, baseLog),
		Assessments:   NewAssessmentRepo(db, baseLog),
		Nominations:   NewNominationRepo(db, baseLog),
		ImportRuns:    NewImportRunRepo(db, baseLog),
		Equalizations: NewEqualizationRepo(db, baseLog),
	}
}
